package request

import (
	"time"

	"gift_contribution/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateContributionRequest is the body of POST /gift. The creator comes from
// the X-User-ID header, not the body.
type CreateContributionRequest struct {
	ProductRef        string          `json:"productRef" binding:"required"`
	ProductName       string          `json:"productName"`
	TotalPrice        decimal.Decimal `json:"totalPrice" swaggertype:"string" example:"10.00"`
	Deadline          *time.Time      `json:"deadline"`
	ParticipantEmails []string        `json:"participantEmails"`
}

func (r CreateContributionRequest) ToInput(creator string) usecase.CreateContributionInput {
	return usecase.CreateContributionInput{
		ProductRef:        r.ProductRef,
		ProductName:       r.ProductName,
		TotalPrice:        r.TotalPrice,
		Deadline:          r.Deadline,
		Creator:           creator,
		ParticipantEmails: r.ParticipantEmails,
	}
}

// ParticipantResponseRequest is the body of POST /gift/:id/paid and /decline.
type ParticipantResponseRequest struct {
	Email string `json:"email" binding:"required"`
}
