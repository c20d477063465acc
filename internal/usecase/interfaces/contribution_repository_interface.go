package interfaces

import (
	"context"

	"gift_contribution/internal/domain/entities"
)

// ContributionMutator edits a private copy of the stored contribution. Returning
// an error aborts the write.
type ContributionMutator func(c *entities.Contribution) error

// IContributionRepository abstracts persistence for Contribution.
//
// CompareAndSwap is the only mutation path after Create:
//   - the mutator runs on the current record only if its version equals expectedVersion
//   - the result is stored with version expectedVersion+1
//   - a stale expectedVersion fails with entities.ErrVersionConflict and nothing is written
//
// Reads of a missing id return the zero Contribution and a nil error.
type IContributionRepository interface {
	Create(ctx context.Context, c entities.Contribution) (entities.Contribution, error)
	GetByID(ctx context.Context, id string) (entities.Contribution, error)
	CompareAndSwap(ctx context.Context, id string, expectedVersion int64, mutate ContributionMutator) (entities.Contribution, error)
	ListByStatus(ctx context.Context, statuses ...entities.ContributionStatus) ([]entities.Contribution, error)
	ListForUser(ctx context.Context, creator, email string) ([]entities.Contribution, error)
}
