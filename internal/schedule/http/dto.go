package http

import (
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/datetime"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

type CreateScheduleRequest struct {
	TennisCourtID int64 `json:"tennis_court_id" binding:"required"`
	// Start is optional at the binding level so the service can report a
	// proper validation message when it is missing.
	StartDateTime *datetime.Minute `json:"start_date_time"`
}

type ScheduleResponse struct {
	ID              int64           `json:"id"`
	TennisCourtID   int64           `json:"tennis_court_id"`
	TennisCourtName string          `json:"tennis_court_name,omitempty"`
	StartDateTime   datetime.Minute `json:"start_date_time"`
	EndDateTime     datetime.Minute `json:"end_date_time"`
}

func NewScheduleResponse(s *schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:              s.ID,
		TennisCourtID:   s.TennisCourtID,
		TennisCourtName: s.TennisCourtName,
		StartDateTime:   datetime.New(s.StartDateTime),
		EndDateTime:     datetime.New(s.EndDateTime),
	}
}

func NewScheduleResponses(schedules []*schedule.Schedule) []ScheduleResponse {
	items := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		items[i] = NewScheduleResponse(s)
	}
	return items
}
