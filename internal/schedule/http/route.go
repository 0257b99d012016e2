package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/schedules")
	{
		group.GET("", h.ListByDates)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
	}
}
