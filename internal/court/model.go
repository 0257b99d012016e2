package court

import (
	"net/http"
	"time"

	"github.com/alexx9363/tennis-courts-v1/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "tennis court not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "tennis court name is required")
)

// TennisCourt is a bookable court. Schedule slots belong to exactly one court.
type TennisCourt struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
