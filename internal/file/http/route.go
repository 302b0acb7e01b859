package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	rooms := g.Group("/rooms")
	rooms.Use(authMiddleware)
	{
		rooms.GET("/:id/photos", h.ListForRoom)
		rooms.POST("/:id/photos", h.Upload)
	}

	photos := g.Group("/photos")
	photos.Use(authMiddleware)
	{
		photos.GET("/:id", h.Download)
		photos.GET("/:id/thumbnail", h.DownloadThumbnail)
	}

	admin := photos.Group("")
	admin.Use(adminMiddleware)
	{
		admin.DELETE("/:id", h.Delete)
	}
}
