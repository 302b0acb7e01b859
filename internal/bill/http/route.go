package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	bills := g.Group("/bills")
	bills.Use(authMiddleware)
	{
		bills.GET("", h.ListBills)
		bills.GET("/:id", h.GetBill)
		bills.POST("", h.CreateBill)
		bills.PATCH("/:id", h.UpdateBill)
		bills.DELETE("/:id", h.DeleteBill)
		bills.POST("/:id/recompute", h.RecomputeBill)
	}

	payments := g.Group("/payments")
	payments.Use(authMiddleware)
	{
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.POST("", h.CreatePayment)
		payments.PATCH("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)
	}
}
