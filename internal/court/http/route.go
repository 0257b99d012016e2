package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/tennis-courts")
	{
		group.GET("/:id", h.Get)
		group.GET("/:id/schedules", h.GetWithSchedules)
		group.POST("", h.Create)
	}
}
