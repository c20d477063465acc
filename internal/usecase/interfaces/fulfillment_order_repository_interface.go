package interfaces

import (
	"context"

	"gift_contribution/internal/domain/entities"
)

// OrderMutator edits a private copy of the stored order.
type OrderMutator func(o *entities.FulfillmentOrder) error

// IFulfillmentOrderRepository abstracts persistence for FulfillmentOrder.
//
// CreateIfAbsent is keyed by the order id, which is derived from the
// contribution id: a second call returns the stored order and created=false.
type IFulfillmentOrderRepository interface {
	CreateIfAbsent(ctx context.Context, o entities.FulfillmentOrder) (order entities.FulfillmentOrder, created bool, err error)
	GetByID(ctx context.Context, id string) (entities.FulfillmentOrder, error)
	CompareAndSwap(ctx context.Context, id string, expectedVersion int64, mutate OrderMutator) (entities.FulfillmentOrder, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.FulfillmentOrder, error)
	List(ctx context.Context) ([]entities.FulfillmentOrder, error)
}
