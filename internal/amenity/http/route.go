package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/amenities")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	// Mutations require admin privileges.
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	// Usage records hang off the booking they were consumed during.
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.GET("/:id/service-usages", h.ListUsages)
		bookings.POST("/:id/service-usages", h.AddUsage)
	}

	usages := g.Group("/service-usages")
	usages.Use(authMiddleware)
	{
		usages.DELETE("/:id", h.DeleteUsage)
	}
}
