package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift_contribution/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakePreferenceClient struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferenceClient) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

func testContribution() (entities.Contribution, entities.Participant) {
	p := entities.Participant{Email: "ana+gift@example.com", ShareAmount: decimal.RequireFromString("3.34")}
	c := entities.Contribution{
		ID:          "c-1",
		ProductRef:  "sku-1",
		ProductName: "Espresso machine",
		Currency:    "BRL",
		Deadline:    time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
	}
	return c, p
}

func TestMercadoPagoLinkProvider_MockMode(t *testing.T) {
	g, err := NewMercadoPagoLinkProvider("", "http://localhost:3000/", true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, p := testContribution()
	link, err := g.CreatePaymentLink(context.Background(), c, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "http://localhost:3000/contribution/c-1?email=ana%2Bgift%40example.com"
	if link != want {
		t.Fatalf("expected %q, got %q", want, link)
	}
}

func TestNewMercadoPagoLinkProvider_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoLinkProvider("", "http://localhost:3000", false, nil)
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoLinkProvider_CreatePreference(t *testing.T) {
	fake := &fakePreferenceClient{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp.example/checkout/pref-1"}}
	g := &MercadoPagoLinkProvider{client: fake, publicBaseURL: "https://gifts.example", log: zap.NewNop()}
	c, p := testContribution()

	link, err := g.CreatePaymentLink(context.Background(), c, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link != "https://mp.example/checkout/pref-1" {
		t.Fatalf("unexpected link %q", link)
	}
	if len(fake.got.Items) != 1 || fake.got.Items[0].UnitPrice != 3.34 || fake.got.Items[0].CurrencyID != "BRL" {
		t.Fatalf("unexpected items %+v", fake.got.Items)
	}
	if fake.got.Payer == nil || fake.got.Payer.Email != p.Email {
		t.Fatalf("unexpected payer %+v", fake.got.Payer)
	}
	if fake.got.ExternalReference != "c-1:ana+gift@example.com" {
		t.Fatalf("unexpected external reference %q", fake.got.ExternalReference)
	}
}

func TestMercadoPagoLinkProvider_Errors(t *testing.T) {
	c, p := testContribution()

	var unconfigured *MercadoPagoLinkProvider
	if _, err := unconfigured.CreatePaymentLink(context.Background(), c, p); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}

	fake := &fakePreferenceClient{err: errors.New("upstream")}
	g := &MercadoPagoLinkProvider{client: fake, log: zap.NewNop()}
	if _, err := g.CreatePaymentLink(context.Background(), c, p); err == nil || err.Error() != "upstream" {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
