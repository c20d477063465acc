package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// preferenceCreator is the part of preference.Client we call.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoLinkProvider creates one checkout preference per participant
// share. In mock mode it returns a link to the contribution page instead.
type MercadoPagoLinkProvider struct {
	client        preferenceCreator
	mockMode      bool
	publicBaseURL string
	log           *zap.Logger
}

var _ interfaces.IPaymentLinkProvider = (*MercadoPagoLinkProvider)(nil)

func NewMercadoPagoLinkProvider(accessToken, publicBaseURL string, mock bool, log *zap.Logger) (*MercadoPagoLinkProvider, error) {
	if log == nil {
		log = zap.NewNop()
	}
	publicBaseURL = strings.TrimRight(publicBaseURL, "/")
	if mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoLinkProvider{mockMode: true, publicBaseURL: publicBaseURL, log: log}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoLinkProvider{client: preference.NewClient(cfg), publicBaseURL: publicBaseURL, log: log}, nil
}

func (g *MercadoPagoLinkProvider) CreatePaymentLink(ctx context.Context, c entities.Contribution, p entities.Participant) (string, error) {
	if g != nil && g.mockMode {
		return g.contributionPage(c.ID, p.Email), nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	title := c.ProductName
	if title == "" {
		title = c.ProductRef
	}
	back := g.contributionPage(c.ID, p.Email)
	req := preference.Request{
		ExternalReference: fmt.Sprintf("%s:%s", c.ID, p.Email),
		Items: []preference.ItemRequest{{
			ID:         c.ProductRef,
			Title:      fmt.Sprintf("Group gift: %s", title),
			Quantity:   1,
			UnitPrice:  p.ShareAmount.InexactFloat64(),
			CurrencyID: c.Currency,
		}},
		Payer: &preference.PayerRequest{Email: p.Email},
		BackURLs: &preference.BackURLsRequest{
			Success: back,
			Pending: back,
			Failure: back,
		},
		ExpirationDateTo: &c.Deadline,
		Expires:          true,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("[payment][gateway] preference create failed",
			zap.String("contribution_id", c.ID),
			zap.String("email", p.Email),
			zap.Error(err),
		)
		return "", err
	}
	g.log.Debug("[payment][gateway] preference created",
		zap.String("contribution_id", c.ID),
		zap.String("preference_id", resp.ID),
	)
	return resp.InitPoint, nil
}

func (g *MercadoPagoLinkProvider) contributionPage(contributionID, email string) string {
	return fmt.Sprintf("%s/contribution/%s?email=%s", g.publicBaseURL, url.PathEscape(contributionID), url.QueryEscape(email))
}
