package usecase

import (
	"context"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		MaxAttempts:     3,
		MaxParticipants: 3,
		DefaultDeadline: 72 * time.Hour,
		Currency:        "BRL",
		DispatchGrace:   30 * time.Second,
		Now:             func() time.Time { return testNow },
	}
}

// newTestContribution builds an open 10.00 contribution at version 1.
func newTestContribution(emails ...string) entities.Contribution {
	if len(emails) == 0 {
		emails = []string{"a@example.com", "b@example.com", "c@example.com"}
	}
	total := decimal.RequireFromString("10.00")
	shares, _ := entities.SplitShares(total, len(emails))
	c := entities.Contribution{
		ID:         "c-1",
		ProductRef: "sku-1",
		TotalPrice: total,
		Currency:   "BRL",
		Deadline:   testNow.Add(24 * time.Hour),
		Creator:    "owner@example.com",
		Status:     entities.ContributionStatusOpen,
		Version:    1,
		CreatedAt:  testNow.Add(-time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
	for i, e := range emails {
		c.Participants = append(c.Participants, entities.Participant{Email: e, ShareAmount: shares[i]})
	}
	return c
}

// casOn emulates a successful store CAS against base.
func casOn(base entities.Contribution) func(context.Context, string, int64, interfaces.ContributionMutator) (entities.Contribution, error) {
	return func(_ context.Context, _ string, _ int64, mutate interfaces.ContributionMutator) (entities.Contribution, error) {
		next := base.Clone()
		if err := mutate(&next); err != nil {
			return entities.Contribution{}, err
		}
		next.Version = base.Version + 1
		return next, nil
	}
}

func orderCasOn(base entities.FulfillmentOrder) func(context.Context, string, int64, interfaces.OrderMutator) (entities.FulfillmentOrder, error) {
	return func(_ context.Context, _ string, _ int64, mutate interfaces.OrderMutator) (entities.FulfillmentOrder, error) {
		next := base.Clone()
		if err := mutate(&next); err != nil {
			return entities.FulfillmentOrder{}, err
		}
		next.Version = base.Version + 1
		return next, nil
	}
}

type stubDetector struct {
	calls int
	c     entities.Contribution
	err   error
}

func (s *stubDetector) Evaluate(_ context.Context, _ string) (entities.Contribution, bool, error) {
	s.calls++
	return s.c, false, s.err
}

type stubDispatcher struct {
	calls int
	err   error
}

func (s *stubDispatcher) Dispatch(_ context.Context, id string) (entities.FulfillmentOrder, error) {
	s.calls++
	if s.err != nil {
		return entities.FulfillmentOrder{}, s.err
	}
	return entities.FulfillmentOrder{ID: entities.OrderIDFor(id), ContributionID: id}, nil
}
