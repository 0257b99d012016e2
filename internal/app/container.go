package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexx9363/tennis-courts-v1/internal/api"
	"github.com/alexx9363/tennis-courts-v1/internal/court"
	"github.com/alexx9363/tennis-courts-v1/internal/guest"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/clock"
	"github.com/alexx9363/tennis-courts-v1/internal/reservation"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Clock        clock.Clock
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewReal()
	}

	// Guest module
	guestRepo := guest.NewPgxRepository(cfg.DBPool)
	guestService := guest.NewService(guestRepo)

	// Tennis court module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo)

	// Schedule module
	scheduleRepo := schedule.NewPgxRepository(cfg.DBPool)
	scheduleService := schedule.NewService(scheduleRepo, courtService, clk)

	// Reservation module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, guestService, scheduleService, clk)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		GuestService:       guestService,
		CourtService:       courtService,
		ScheduleService:    scheduleService,
		ReservationService: reservationService,
	})

	return &Container{Router: router}
}
