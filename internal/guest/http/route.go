package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/guests")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/search-in-name/:partialName", h.SearchInName)
		group.POST("", h.Create)
		group.PUT("", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
