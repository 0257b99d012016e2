package schedule

import (
	"net/http"
	"time"

	"github.com/alexx9363/tennis-courts-v1/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "schedule not found")
	ErrStartRequired = apperror.New(http.StatusBadRequest, "Schedule start date is missing")
	ErrStartInPast   = apperror.New(http.StatusBadRequest, "Schedule start date cannot be older than today")
	ErrSlotTaken     = apperror.New(http.StatusConflict, "The schedule is not available")

	// Returned when validating a slot for booking.
	ErrAlreadyReserved = apperror.New(http.StatusConflict, "Reservation already exists")
	ErrStartPassed     = apperror.New(http.StatusBadRequest, "Start date can not be older than today")
)

// SlotDuration is the fixed length of every schedule slot.
const SlotDuration = time.Hour

// Schedule is a one-hour bookable window on a tennis court.
// Schedules are immutable once created; availability is derived from the
// reservations referencing them, never stored on the slot itself.
type Schedule struct {
	ID              int64
	TennisCourtID   int64
	TennisCourtName string
	StartDateTime   time.Time
	EndDateTime     time.Time
	CreatedAt       time.Time
}
