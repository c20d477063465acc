package interfaces

import (
	"context"

	"gift_contribution/internal/domain/entities"
)

// IPaymentLinkProvider abstracts the checkout provider (e.g. Mercado Pago).
//
// The service only needs a link per participant; payment confirmation reaches
// us through POST /gift/:id/paid.
type IPaymentLinkProvider interface {
	CreatePaymentLink(ctx context.Context, c entities.Contribution, p entities.Participant) (string, error)
}
