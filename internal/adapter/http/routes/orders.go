package routes

import (
	"gift_contribution/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.FulfillmentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/status", h.UpdateOrderStatus)
	}
}
