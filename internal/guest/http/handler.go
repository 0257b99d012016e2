package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexx9363/tennis-courts-v1/internal/guest"
	"github.com/alexx9363/tennis-courts-v1/internal/pkg/response"
)

type Handler struct {
	service guest.Service
}

func NewHandler(service guest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/v1/guests/%d", g.ID))
	c.JSON(http.StatusCreated, NewGuestResponse(g))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest id"})
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponse(g))
}

// List returns every guest, or only those matching the exact name when the
// name query parameter is present.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		guests []*guest.Guest
		err    error
	)
	if name, ok := c.GetQuery("name"); ok {
		guests, err = h.service.FindByName(ctx, name)
	} else {
		guests, err = h.service.List(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponses(guests))
}

func (h *Handler) SearchInName(c *gin.Context) {
	guests, err := h.service.FindByPartialName(c.Request.Context(), c.Param("partialName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponses(guests))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.service.Update(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponse(g))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusOK)
}
