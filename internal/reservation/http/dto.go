package http

import (
	"github.com/shopspring/decimal"

	guestHttp "github.com/alexx9363/tennis-courts-v1/internal/guest/http"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/datetime"
	"github.com/alexx9363/tennis-courts-v1/internal/reservation"
)

type CreateReservationRequest struct {
	GuestID    int64 `json:"guest_id" binding:"required"`
	ScheduleID int64 `json:"schedule_id" binding:"required"`
}

// RescheduleRequest carries the target slot. The id is bound as a pointer
// so an absent field reaches the service and fails with its own message.
type RescheduleRequest struct {
	ScheduleID *int64 `json:"schedule_id"`
}

// ScheduleTag is the compact slot reference embedded in reservation responses.
type ScheduleTag struct {
	ID            int64           `json:"id"`
	TennisCourtID int64           `json:"tennis_court_id"`
	StartDateTime datetime.Minute `json:"start_date_time"`
	EndDateTime   datetime.Minute `json:"end_date_time"`
}

type ReservationResponse struct {
	ID                    int64              `json:"id"`
	Guest                 guestHttp.GuestTag `json:"guest"`
	Schedule              ScheduleTag        `json:"schedule"`
	Value                 decimal.Decimal    `json:"value"`
	RefundValue           decimal.Decimal    `json:"refund_value"`
	Status                string             `json:"status"`
	PreviousReservationID *int64             `json:"previous_reservation_id,omitempty"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:    r.ID,
		Guest: guestHttp.GuestTag{ID: r.GuestID, Name: r.GuestName},
		Schedule: ScheduleTag{
			ID:            r.ScheduleID,
			TennisCourtID: r.ScheduleCourtID,
			StartDateTime: datetime.New(r.ScheduleStart),
			EndDateTime:   datetime.New(r.ScheduleEnd),
		},
		Value:                 r.Value,
		RefundValue:           r.RefundValue,
		Status:                string(r.Status),
		PreviousReservationID: r.PreviousReservationID,
	}
}

func NewReservationResponses(reservations []*reservation.Reservation) []ReservationResponse {
	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}
	return items
}
