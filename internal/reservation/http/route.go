package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.GET("", h.ListPast)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id/cancel", h.Cancel)
		group.PUT("/:id/reschedule", h.Reschedule)
	}
}
