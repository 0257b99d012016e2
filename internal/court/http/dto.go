package http

import (
	"github.com/alexx9363/tennis-courts-v1/internal/court"
	scheduleHttp "github.com/alexx9363/tennis-courts-v1/internal/schedule/http"
)

type CreateTennisCourtRequest struct {
	Name string `json:"name" binding:"required"`
}

type TennisCourtResponse struct {
	ID        int64                           `json:"id"`
	Name      string                          `json:"name"`
	Schedules []scheduleHttp.ScheduleResponse `json:"schedules,omitempty"`
}

func NewTennisCourtResponse(tc *court.TennisCourt) TennisCourtResponse {
	return TennisCourtResponse{
		ID:   tc.ID,
		Name: tc.Name,
	}
}
