package repository

import (
	"path/filepath"
	"testing"
	"time"

	"gift_contribution/internal/domain/entities"

	bolt "github.com/boltdb/bolt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestBoltDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleContribution(id string, emails ...string) entities.Contribution {
	if len(emails) == 0 {
		emails = []string{"ana@example.com", "bia@example.com", "caio@example.com"}
	}
	total := decimal.RequireFromString("10.00")
	shares, err := entities.SplitShares(total, len(emails))
	if err != nil {
		panic(err)
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := entities.Contribution{
		ID:          id,
		ProductRef:  "sku-1",
		ProductName: "Espresso machine",
		TotalPrice:  total,
		Currency:    "BRL",
		Deadline:    now.Add(72 * time.Hour),
		Creator:     "owner@example.com",
		Status:      entities.ContributionStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, e := range emails {
		c.Participants = append(c.Participants, entities.Participant{Email: e, ShareAmount: shares[i]})
	}
	return c
}

func sampleOrder(contributionID string) entities.FulfillmentOrder {
	c := sampleContribution(contributionID)
	c.Status = entities.ContributionStatusCompleted
	c.OrderRef = entities.OrderIDFor(c.ID)
	return entities.NewFulfillmentOrder(c, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
}
