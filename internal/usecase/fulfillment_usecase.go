package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var ErrInvalidOrderID = fmt.Errorf("%w: invalid order id", entities.ErrInvalidInput)

// UpdateOrderStatusInput is a staff status change on a fulfillment order.
type UpdateOrderStatusInput struct {
	Status         string
	UpdatedBy      string
	Notes          string
	TrackingNumber string
}

// IFulfillmentUseCase exposes the staff-facing order workflow:
//   - POST /orders/:id/status => UpdateStatus()
//   - GET /orders?tab=        => ListByTab()
//   - GET /orders/:id         => GetByID()
type IFulfillmentUseCase interface {
	UpdateStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (entities.FulfillmentOrder, error)
	ListByTab(ctx context.Context, tab string) ([]entities.FulfillmentOrder, error)
	GetByID(ctx context.Context, id string) (entities.FulfillmentOrder, error)
}

type FulfillmentUseCase struct {
	orders   interfaces.IFulfillmentOrderRepository
	notifier interfaces.INotificationPublisher
	log      *zap.Logger
	settings Settings
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(orders interfaces.IFulfillmentOrderRepository, notifier interfaces.INotificationPublisher, log *zap.Logger, settings Settings) *FulfillmentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &FulfillmentUseCase{orders: orders, notifier: notifier, log: log, settings: settings.withDefaults()}
}

// UpdateStatus applies one step of the order state machine. Repeating the
// current status is a no-op.
func (u *FulfillmentUseCase) UpdateStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (entities.FulfillmentOrder, error) {
	ctx, span := tracer.Start(ctx, "FulfillmentUseCase.UpdateStatus")
	defer span.End()

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.FulfillmentOrder{}, ErrInvalidOrderID
	}
	target, err := entities.ParseOrderStatus(in.Status)
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	span.SetAttributes(attribute.String("order.id", orderID), attribute.String("order.target_status", string(target)))

	updatedBy := strings.TrimSpace(in.UpdatedBy)
	if updatedBy == "" {
		updatedBy = "staff"
	}
	notes := strings.TrimSpace(in.Notes)
	tracking := strings.TrimSpace(in.TrackingNumber)

	for attempt := 1; attempt <= u.settings.MaxAttempts; attempt++ {
		o, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.FulfillmentOrder{}, err
		}
		if o.ID == "" {
			return entities.FulfillmentOrder{}, ErrOrderNotFound
		}
		if o.Status == target {
			return o, nil
		}
		if !o.Status.CanTransitionTo(target) {
			return entities.FulfillmentOrder{}, fmt.Errorf("%w: order %s cannot move from %s to %s", entities.ErrInvalidTransition, o.ID, o.Status, target)
		}

		from := o.Status
		now := u.settings.now()
		updated, err := u.orders.CompareAndSwap(ctx, o.ID, o.Version, func(cur *entities.FulfillmentOrder) error {
			if err := cur.ApplyStatus(target, updatedBy, notes, now); err != nil {
				return err
			}
			if tracking != "" {
				cur.TrackingNumber = tracking
			}
			return nil
		})
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.FulfillmentOrder{}, err
		}

		u.log.Info("[order][usecase] status updated",
			zap.String("order_id", updated.ID),
			zap.String("from", string(from)),
			zap.String("to", string(updated.Status)),
			zap.String("updated_by", updatedBy),
		)
		publishAll(ctx, u.log, u.notifier, entities.Notification{
			Kind:           entities.NotificationOrderStatusChanged,
			ContributionID: updated.ContributionID,
			OrderID:        updated.ID,
			Recipient:      updated.Recipient,
			Subject:        fmt.Sprintf("Your gift order is now %s", updated.Status),
			Data: map[string]string{
				"status":          string(updated.Status),
				"tracking_number": updated.TrackingNumber,
				"product_name":    updated.ProductName,
			},
			CreatedAt: now,
		})
		return updated, nil
	}
	return entities.FulfillmentOrder{}, fmt.Errorf("%w: %d attempts", ErrConcurrencyExhausted, u.settings.MaxAttempts)
}

// ListByTab returns the orders shown under a staff tab. An empty tab lists
// every order.
func (u *FulfillmentUseCase) ListByTab(ctx context.Context, tab string) ([]entities.FulfillmentOrder, error) {
	if strings.TrimSpace(tab) == "" {
		return u.orders.List(ctx)
	}
	t, err := entities.ParseOrderTab(tab)
	if err != nil {
		return nil, err
	}
	status, _ := t.Status()
	return u.orders.ListByStatus(ctx, status)
}

func (u *FulfillmentUseCase) GetByID(ctx context.Context, id string) (entities.FulfillmentOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FulfillmentOrder{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.FulfillmentOrder{}, err
	}
	if o.ID == "" {
		return entities.FulfillmentOrder{}, ErrOrderNotFound
	}
	return o, nil
}
