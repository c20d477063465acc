package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"gift_contribution/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newContributionBoltRepo(t *testing.T) *ContributionBoltRepository {
	t.Helper()
	repo, err := NewContributionBoltRepository(newTestBoltDB(t))
	require.NoError(t, err)
	return repo
}

func TestContributionBoltRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newContributionBoltRepo(t)

	created, err := repo.Create(ctx, sampleContribution("c-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ID)
	assert.True(t, got.TotalPrice.Equal(created.TotalPrice))
	require.Len(t, got.Participants, 3)
	assert.Equal(t, "3.34", got.Participants[0].ShareAmount.StringFixed(2))

	_, err = repo.Create(ctx, sampleContribution("c-1"))
	assert.True(t, errors.Is(err, entities.ErrAlreadyExists), "got %v", err)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestContributionBoltRepository_CreateRejectsInvalid(t *testing.T) {
	repo := newContributionBoltRepo(t)
	c := sampleContribution("c-1")
	c.Participants[0].ShareAmount = c.Participants[0].ShareAmount.Add(c.Participants[1].ShareAmount)

	_, err := repo.Create(context.Background(), c)
	assert.True(t, errors.Is(err, entities.ErrInvalidInput), "got %v", err)
}

func TestContributionBoltRepository_CompareAndSwap(t *testing.T) {
	ctx := context.Background()

	t.Run("applies mutation and bumps version", func(t *testing.T) {
		repo := newContributionBoltRepo(t)
		_, err := repo.Create(ctx, sampleContribution("c-1"))
		require.NoError(t, err)

		updated, err := repo.CompareAndSwap(ctx, "c-1", 1, func(c *entities.Contribution) error {
			c.Participants[0].HasPaid = true
			return c.TransitionTo(entities.ContributionStatusFunding)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)
		assert.Equal(t, entities.ContributionStatusFunding, updated.Status)

		stored, err := repo.GetByID(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, updated.Version, stored.Version)
		assert.True(t, stored.Participants[0].HasPaid)
	})

	t.Run("stale version conflicts without running mutator", func(t *testing.T) {
		repo := newContributionBoltRepo(t)
		_, err := repo.Create(ctx, sampleContribution("c-1"))
		require.NoError(t, err)

		called := false
		_, err = repo.CompareAndSwap(ctx, "c-1", 7, func(c *entities.Contribution) error {
			called = true
			return nil
		})
		assert.True(t, errors.Is(err, entities.ErrVersionConflict), "got %v", err)
		assert.False(t, called)
	})

	t.Run("mutator error leaves record untouched", func(t *testing.T) {
		repo := newContributionBoltRepo(t)
		_, err := repo.Create(ctx, sampleContribution("c-1"))
		require.NoError(t, err)

		boom := errors.New("boom")
		_, err = repo.CompareAndSwap(ctx, "c-1", 1, func(c *entities.Contribution) error {
			c.Participants[0].HasPaid = true
			return boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := repo.GetByID(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Version)
		assert.False(t, stored.Participants[0].HasPaid)
	})

	t.Run("order ref without completion is rejected", func(t *testing.T) {
		repo := newContributionBoltRepo(t)
		_, err := repo.Create(ctx, sampleContribution("c-1"))
		require.NoError(t, err)

		_, err = repo.CompareAndSwap(ctx, "c-1", 1, func(c *entities.Contribution) error {
			c.OrderRef = "ord-c-1"
			return nil
		})
		assert.True(t, errors.Is(err, entities.ErrInvalidInput), "got %v", err)
	})

	t.Run("missing record reports a conflict", func(t *testing.T) {
		repo := newContributionBoltRepo(t)
		_, err := repo.CompareAndSwap(ctx, "ghost", 1, func(*entities.Contribution) error { return nil })
		assert.True(t, errors.Is(err, entities.ErrVersionConflict), "got %v", err)
	})
}

func TestContributionBoltRepository_CompareAndSwapSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := newContributionBoltRepo(t)
	_, err := repo.Create(ctx, sampleContribution("c-1"))
	require.NoError(t, err)

	var wins, conflicts int32
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := repo.CompareAndSwap(ctx, "c-1", 1, func(c *entities.Contribution) error {
				return c.TransitionTo(entities.ContributionStatusFunding)
			})
			switch {
			case err == nil:
				atomic.AddInt32(&wins, 1)
			case errors.Is(err, entities.ErrVersionConflict):
				atomic.AddInt32(&conflicts, 1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), wins)
	assert.Equal(t, int32(15), conflicts)
}

func TestContributionBoltRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := newContributionBoltRepo(t)

	open := sampleContribution("c-open", "ana@example.com")
	funding := sampleContribution("c-funding", "bia@example.com")
	funding.Status = entities.ContributionStatusFunding
	other := sampleContribution("c-other", "ana@example.com")
	other.Creator = "someone@example.com"
	other.Status = entities.ContributionStatusExpired
	for _, c := range []entities.Contribution{open, funding, other} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	active, err := repo.ListByStatus(ctx, entities.ContributionStatusOpen, entities.ContributionStatusFunding)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c-open", "c-funding"}, contributionIDs(active))

	byCreator, err := repo.ListForUser(ctx, "owner@example.com", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c-open", "c-funding"}, contributionIDs(byCreator))

	byEmail, err := repo.ListForUser(ctx, "", "ana@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c-open", "c-other"}, contributionIDs(byEmail))

	none, err := repo.ListByStatus(ctx, entities.ContributionStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func contributionIDs(list []entities.Contribution) []string {
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	return ids
}
