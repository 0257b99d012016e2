package reservation

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexx9363/tennis-courts-v1/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "reservation not found")
	ErrNotReadyToPlay     = apperror.New(http.StatusBadRequest, "Can not update because it's not in ready to play status.")
	ErrPastReservation    = apperror.New(http.StatusBadRequest, "Can not update past reservations.")
	ErrSameSlot           = apperror.New(http.StatusBadRequest, "Cannot reschedule to the same slot.")
	ErrScheduleIDRequired = apperror.New(http.StatusBadRequest, "Schedule id cannot be null.")
)

// Deposit is the fixed amount held when a reservation is booked.
var Deposit = decimal.NewFromInt(10)

type Status string

const (
	StatusReadyToPlay Status = "READY_TO_PLAY"
	StatusCancelled   Status = "CANCELLED"
	StatusRescheduled Status = "RESCHEDULED"
)

// Reservation holds a slot for a guest. Value is the amount still held,
// RefundValue the amount returned to the guest; their sum never changes
// after booking. CANCELLED and RESCHEDULED are terminal.
type Reservation struct {
	ID                    int64
	GuestID               int64
	GuestName             string
	ScheduleID            int64
	ScheduleCourtID       int64
	ScheduleStart         time.Time
	ScheduleEnd           time.Time
	Value                 decimal.Decimal
	RefundValue           decimal.Decimal
	Status                Status
	PreviousReservationID *int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
