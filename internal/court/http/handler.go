package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexx9363/tennis-courts-v1/internal/court"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/response"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
	scheduleHttp "github.com/alexx9363/tennis-courts-v1/internal/schedule/http"
)

type Handler struct {
	service         court.Service
	scheduleService schedule.Service
}

func NewHandler(service court.Service, scheduleService schedule.Service) *Handler {
	return &Handler{
		service:         service,
		scheduleService: scheduleService,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTennisCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tc, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/v1/tennis-courts/%d", tc.ID))
	c.JSON(http.StatusCreated, NewTennisCourtResponse(tc))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tennis court id"})
		return
	}

	tc, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTennisCourtResponse(tc))
}

// GetWithSchedules returns the court together with its slots ordered by start.
func (h *Handler) GetWithSchedules(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tennis court id"})
		return
	}
	ctx := c.Request.Context()

	tc, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	schedules, err := h.scheduleService.FindByCourt(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := NewTennisCourtResponse(tc)
	resp.Schedules = scheduleHttp.NewScheduleResponses(schedules)
	c.JSON(http.StatusOK, resp)
}
