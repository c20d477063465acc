package routes

import (
	"gift_contribution/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGift = "/gift"
)

func addGiftRoutes(rg *gin.RouterGroup, h *handlers.ContributionHandler) {
	gift := rg.Group(PathGift)
	{
		gift.POST("", h.CreateContribution)
		gift.GET("", h.ListContributions)
		gift.GET("/:id", h.GetContribution)
		gift.POST("/:id/paid", h.MarkPaid)
		gift.POST("/:id/decline", h.Decline)
		gift.POST("/:id/cancel", h.CancelContribution)
	}
}
