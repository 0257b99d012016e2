package guest

import (
	"net/http"
	"time"

	"github.com/alexx9363/tennis-courts-v1/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "guest not found")
	ErrIDRequired   = apperror.New(http.StatusBadRequest, "Guest id is missing")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "guest name is required")
)

// Guest is a player that can hold reservations.
type Guest struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
