package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const contributionsBucket = "contributions"

// ContributionBoltRepository keeps contributions in an embedded BoltDB file.
//
// Bolt serializes write transactions, so CompareAndSwap checks the version and
// writes the mutated record inside a single db.Update.
type ContributionBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IContributionRepository = (*ContributionBoltRepository)(nil)

func NewContributionBoltRepository(db *bolt.DB) (*ContributionBoltRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(contributionsBucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ContributionBoltRepository{db: db}, nil
}

func (r *ContributionBoltRepository) Create(_ context.Context, c entities.Contribution) (entities.Contribution, error) {
	if c.Version == 0 {
		c.Version = 1
	}
	if err := c.Validate(); err != nil {
		return entities.Contribution{}, err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return entities.Contribution{}, err
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(contributionsBucket))
		if b.Get([]byte(c.ID)) != nil {
			return fmt.Errorf("%w: contribution %s", entities.ErrAlreadyExists, c.ID)
		}
		return b.Put([]byte(c.ID), data)
	})
	if err != nil {
		return entities.Contribution{}, err
	}
	return c, nil
}

func (r *ContributionBoltRepository) GetByID(_ context.Context, id string) (entities.Contribution, error) {
	var c entities.Contribution
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(contributionsBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &c)
	})
	if err != nil {
		return entities.Contribution{}, err
	}
	return c, nil
}

func (r *ContributionBoltRepository) CompareAndSwap(_ context.Context, id string, expectedVersion int64, mutate interfaces.ContributionMutator) (entities.Contribution, error) {
	var next entities.Contribution
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(contributionsBucket))
		v := b.Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: contribution %s not found", entities.ErrVersionConflict, id)
		}
		var current entities.Contribution
		if err := json.Unmarshal(v, &current); err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return fmt.Errorf("%w: contribution %s is at version %d, expected %d", entities.ErrVersionConflict, id, current.Version, expectedVersion)
		}

		next = current.Clone()
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.Version = expectedVersion + 1
		next.UpdatedAt = time.Now().UTC()
		if err := next.Validate(); err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return entities.Contribution{}, err
	}
	return next, nil
}

func (r *ContributionBoltRepository) ListByStatus(_ context.Context, statuses ...entities.ContributionStatus) ([]entities.Contribution, error) {
	want := make(map[entities.ContributionStatus]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	return r.scan(func(c entities.Contribution) bool {
		_, ok := want[c.Status]
		return ok
	})
}

func (r *ContributionBoltRepository) ListForUser(_ context.Context, creator, email string) ([]entities.Contribution, error) {
	return r.scan(func(c entities.Contribution) bool {
		if creator != "" && c.Creator == creator {
			return true
		}
		return email != "" && c.ParticipantIndex(email) >= 0
	})
}

func (r *ContributionBoltRepository) scan(keep func(entities.Contribution) bool) ([]entities.Contribution, error) {
	items := make([]entities.Contribution, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(contributionsBucket)).ForEach(func(_, v []byte) error {
			var c entities.Contribution
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			if keep(c) {
				items = append(items, c)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
