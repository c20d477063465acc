package response

import (
	"time"

	"gift_contribution/internal/domain/entities"
)

type ParticipantResponse struct {
	Email       string     `json:"email"`
	ShareAmount string     `json:"shareAmount"`
	HasPaid     bool       `json:"hasPaid"`
	Declined    bool       `json:"declined"`
	PaymentLink string     `json:"paymentLink,omitempty"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	DeclinedAt  *time.Time `json:"declinedAt,omitempty"`
}

type ContributionResponse struct {
	ID           string                `json:"id"`
	ProductRef   string                `json:"productRef"`
	ProductName  string                `json:"productName,omitempty"`
	TotalPrice   string                `json:"totalPrice"`
	Collected    string                `json:"collected"`
	Currency     string                `json:"currency"`
	Deadline     time.Time             `json:"deadline"`
	Creator      string                `json:"creator"`
	Status       string                `json:"status"`
	OrderRef     string                `json:"orderRef,omitempty"`
	Participants []ParticipantResponse `json:"participants"`
	Version      int64                 `json:"version"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func FromContribution(c entities.Contribution) ContributionResponse {
	res := ContributionResponse{
		ID:           c.ID,
		ProductRef:   c.ProductRef,
		ProductName:  c.ProductName,
		TotalPrice:   c.TotalPrice.StringFixed(entities.MinorUnitDigits),
		Collected:    c.PaidTotal().StringFixed(entities.MinorUnitDigits),
		Currency:     c.Currency,
		Deadline:     c.Deadline,
		Creator:      c.Creator,
		Status:       string(c.Status),
		OrderRef:     c.OrderRef,
		Participants: make([]ParticipantResponse, 0, len(c.Participants)),
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, p := range c.Participants {
		res.Participants = append(res.Participants, ParticipantResponse{
			Email:       p.Email,
			ShareAmount: p.ShareAmount.StringFixed(entities.MinorUnitDigits),
			HasPaid:     p.HasPaid,
			Declined:    p.Declined,
			PaymentLink: p.PaymentLink,
			PaidAt:      p.PaidAt,
			DeclinedAt:  p.DeclinedAt,
		})
	}
	return res
}

func FromContributions(list []entities.Contribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContribution(c))
	}
	return out
}
