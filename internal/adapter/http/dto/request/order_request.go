package request

import "gift_contribution/internal/usecase"

// UpdateOrderStatusRequest is the body of POST /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required" example:"Paid"`
	Notes          string `json:"notes"`
	TrackingNumber string `json:"trackingNumber"`
}

func (r UpdateOrderStatusRequest) ToInput(updatedBy string) usecase.UpdateOrderStatusInput {
	return usecase.UpdateOrderStatusInput{
		Status:         r.Status,
		UpdatedBy:      updatedBy,
		Notes:          r.Notes,
		TrackingNumber: r.TrackingNumber,
	}
}
