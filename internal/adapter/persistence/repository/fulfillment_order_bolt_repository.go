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

const ordersBucket = "orders"

// FulfillmentOrderBoltRepository keeps fulfillment orders in an embedded BoltDB file.
type FulfillmentOrderBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IFulfillmentOrderRepository = (*FulfillmentOrderBoltRepository)(nil)

func NewFulfillmentOrderBoltRepository(db *bolt.DB) (*FulfillmentOrderBoltRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(ordersBucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &FulfillmentOrderBoltRepository{db: db}, nil
}

// CreateIfAbsent stores o unless an order with the same id exists, in which
// case the stored order is returned unchanged.
func (r *FulfillmentOrderBoltRepository) CreateIfAbsent(_ context.Context, o entities.FulfillmentOrder) (entities.FulfillmentOrder, bool, error) {
	if o.Version == 0 {
		o.Version = 1
	}
	var (
		result  entities.FulfillmentOrder
		created bool
	)
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ordersBucket))
		if existing := b.Get([]byte(o.ID)); existing != nil {
			return json.Unmarshal(existing, &result)
		}
		data, err := json.Marshal(o)
		if err != nil {
			return err
		}
		result = o
		created = true
		return b.Put([]byte(o.ID), data)
	})
	if err != nil {
		return entities.FulfillmentOrder{}, false, err
	}
	return result, created, nil
}

func (r *FulfillmentOrderBoltRepository) GetByID(_ context.Context, id string) (entities.FulfillmentOrder, error) {
	var o entities.FulfillmentOrder
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ordersBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &o)
	})
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	return o, nil
}

func (r *FulfillmentOrderBoltRepository) CompareAndSwap(_ context.Context, id string, expectedVersion int64, mutate interfaces.OrderMutator) (entities.FulfillmentOrder, error) {
	var next entities.FulfillmentOrder
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ordersBucket))
		v := b.Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: order %s not found", entities.ErrVersionConflict, id)
		}
		var current entities.FulfillmentOrder
		if err := json.Unmarshal(v, &current); err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return fmt.Errorf("%w: order %s is at version %d, expected %d", entities.ErrVersionConflict, id, current.Version, expectedVersion)
		}

		next = current.Clone()
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.Version = expectedVersion + 1
		next.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	return next, nil
}

func (r *FulfillmentOrderBoltRepository) ListByStatus(_ context.Context, status entities.OrderStatus) ([]entities.FulfillmentOrder, error) {
	return r.scan(func(o entities.FulfillmentOrder) bool { return o.Status == status })
}

func (r *FulfillmentOrderBoltRepository) List(_ context.Context) ([]entities.FulfillmentOrder, error) {
	return r.scan(func(entities.FulfillmentOrder) bool { return true })
}

func (r *FulfillmentOrderBoltRepository) scan(keep func(entities.FulfillmentOrder) bool) ([]entities.FulfillmentOrder, error) {
	items := make([]entities.FulfillmentOrder, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ordersBucket)).ForEach(func(_, v []byte) error {
			var o entities.FulfillmentOrder
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			if keep(o) {
				items = append(items, o)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
