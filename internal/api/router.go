package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexx9363/tennis-courts-v1/internal/court"
	courtHttp "github.com/alexx9363/tennis-courts-v1/internal/court/http"
	"github.com/alexx9363/tennis-courts-v1/internal/guest"
	guestHttp "github.com/alexx9363/tennis-courts-v1/internal/guest/http"
	"github.com/alexx9363/tennis-courts-v1/internal/reservation"
	reservationHttp "github.com/alexx9363/tennis-courts-v1/internal/reservation/http"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
	scheduleHttp "github.com/alexx9363/tennis-courts-v1/internal/schedule/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	GuestService       guest.Service
	CourtService       court.Service
	ScheduleService    schedule.Service
	ReservationService reservation.Service
}

// NewRouter assembles the HTTP engine: global middleware (logging,
// recovery, CORS, request ids) and the route groups of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	guestHandler := guestHttp.NewHandler(cfg.GuestService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService, cfg.ScheduleService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)

	v1 := r.Group("/v1")
	{
		guestHttp.RegisterRoutes(v1, guestHandler)
		courtHttp.RegisterRoutes(v1, courtHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
		reservationHttp.RegisterRoutes(v1, reservationHandler)
	}

	return r
}
