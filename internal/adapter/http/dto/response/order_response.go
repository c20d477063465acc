package response

import (
	"time"

	"gift_contribution/internal/domain/entities"
)

type StatusChangeResponse struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	At        time.Time `json:"at"`
}

type OrderResponse struct {
	ID             string                 `json:"id"`
	ContributionID string                 `json:"contributionId"`
	ProductRef     string                 `json:"productRef"`
	ProductName    string                 `json:"productName,omitempty"`
	Total          string                 `json:"total"`
	Collected      string                 `json:"collected"`
	Currency       string                 `json:"currency"`
	Recipient      string                 `json:"recipient"`
	Status         string                 `json:"status"`
	Tab            string                 `json:"tab,omitempty"`
	TrackingNumber string                 `json:"trackingNumber,omitempty"`
	DeliveryNotes  string                 `json:"deliveryNotes,omitempty"`
	DeliveredAt    *time.Time             `json:"deliveredAt,omitempty"`
	History        []StatusChangeResponse `json:"history"`
	Version        int64                  `json:"version"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func FromOrder(o entities.FulfillmentOrder) OrderResponse {
	res := OrderResponse{
		ID:             o.ID,
		ContributionID: o.ContributionID,
		ProductRef:     o.ProductRef,
		ProductName:    o.ProductName,
		Total:          o.Total.StringFixed(entities.MinorUnitDigits),
		Collected:      o.Collected.StringFixed(entities.MinorUnitDigits),
		Currency:       o.Currency,
		Recipient:      o.Recipient,
		Status:         string(o.Status),
		TrackingNumber: o.TrackingNumber,
		DeliveryNotes:  o.DeliveryNotes,
		DeliveredAt:    o.DeliveredAt,
		History:        make([]StatusChangeResponse, 0, len(o.History)),
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if tab, ok := entities.TabForStatus(o.Status); ok {
		res.Tab = string(tab)
	}
	for _, h := range o.History {
		res.History = append(res.History, StatusChangeResponse{
			Status:    string(h.Status),
			UpdatedBy: h.UpdatedBy,
			Notes:     h.Notes,
			At:        h.At,
		})
	}
	return res
}

func FromOrders(list []entities.FulfillmentOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}
