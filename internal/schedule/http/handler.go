package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexx9363/tennis-courts-v1/internal/pkg/response"
	"github.com/alexx9363/tennis-courts-v1/internal/schedule"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var start *time.Time
	if req.StartDateTime != nil {
		t := req.StartDateTime.Time()
		start = &t
	}

	s, err := h.service.Add(c.Request.Context(), req.TennisCourtID, start)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/v1/schedules/%d", s.ID))
	c.JSON(http.StatusCreated, NewScheduleResponse(s))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewScheduleResponse(s))
}

// ListByDates returns the slots falling inside the inclusive date range.
// Dates arrive as plain days and are expanded to day bounds.
func (h *Handler) ListByDates(c *gin.Context) {
	startDate, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, expected YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, expected YYYY-MM-DD"})
		return
	}

	start := startDate
	end := endDate.Add(24*time.Hour - time.Second)

	schedules, err := h.service.FindByDates(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewScheduleResponses(schedules))
}
