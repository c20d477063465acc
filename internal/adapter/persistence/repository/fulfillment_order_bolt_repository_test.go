package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gift_contribution/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderBoltRepo(t *testing.T) *FulfillmentOrderBoltRepository {
	t.Helper()
	repo, err := NewFulfillmentOrderBoltRepository(newTestBoltDB(t))
	require.NoError(t, err)
	return repo
}

func TestFulfillmentOrderBoltRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := newOrderBoltRepo(t)
	o := sampleOrder("c-1")

	first, created, err := repo.CreateIfAbsent(ctx, o)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ord-c-1", first.ID)

	retry := o
	retry.ProductName = "changed"
	second, created, err := repo.CreateIfAbsent(ctx, retry)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, o.ProductName, second.ProductName)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFulfillmentOrderBoltRepository_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := newOrderBoltRepo(t)
	_, _, err := repo.CreateIfAbsent(ctx, sampleOrder("c-1"))
	require.NoError(t, err)

	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	updated, err := repo.CompareAndSwap(ctx, "ord-c-1", 1, func(o *entities.FulfillmentOrder) error {
		return o.ApplyStatus(entities.OrderStatusPaid, "staff", "", now)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Len(t, updated.History, 2)

	_, err = repo.CompareAndSwap(ctx, "ord-c-1", 1, func(o *entities.FulfillmentOrder) error {
		return o.ApplyStatus(entities.OrderStatusPacking, "staff", "", now)
	})
	assert.True(t, errors.Is(err, entities.ErrVersionConflict), "got %v", err)

	paid, err := repo.ListByStatus(ctx, entities.OrderStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "ord-c-1", paid[0].ID)

	pending, err := repo.ListByStatus(ctx, entities.OrderStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
