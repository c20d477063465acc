package usecase

import (
	"context"
	"errors"
	"fmt"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var errAlreadyLinked = errors.New("order already linked")

// IOrderDispatcher hands a completed contribution to fulfillment.
//
// Dispatch is idempotent: the order id is derived from the contribution id, so
// repeated calls return the same order, and only the call that links it sends
// the completion notification.
type IOrderDispatcher interface {
	Dispatch(ctx context.Context, contributionID string) (entities.FulfillmentOrder, error)
}

type OrderDispatcher struct {
	contributions interfaces.IContributionRepository
	orders        interfaces.IFulfillmentOrderRepository
	notifier      interfaces.INotificationPublisher
	log           *zap.Logger
	settings      Settings
}

var _ IOrderDispatcher = (*OrderDispatcher)(nil)

func NewOrderDispatcher(
	contributions interfaces.IContributionRepository,
	orders interfaces.IFulfillmentOrderRepository,
	notifier interfaces.INotificationPublisher,
	log *zap.Logger,
	settings Settings,
) *OrderDispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderDispatcher{
		contributions: contributions,
		orders:        orders,
		notifier:      notifier,
		log:           log,
		settings:      settings.withDefaults(),
	}
}

func (d *OrderDispatcher) Dispatch(ctx context.Context, contributionID string) (entities.FulfillmentOrder, error) {
	ctx, span := tracer.Start(ctx, "OrderDispatcher.Dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("contribution.id", contributionID))

	c, err := d.contributions.GetByID(ctx, contributionID)
	if err != nil {
		return entities.FulfillmentOrder{}, fmt.Errorf("%w: load contribution: %v", ErrDispatchFailure, err)
	}
	if c.ID == "" {
		return entities.FulfillmentOrder{}, ErrContributionNotFound
	}
	if c.Status != entities.ContributionStatusCompleted {
		return entities.FulfillmentOrder{}, fmt.Errorf("%w: contribution %s is %s", entities.ErrInvalidTransition, c.ID, c.Status)
	}

	now := d.settings.now()
	order, created, err := d.orders.CreateIfAbsent(ctx, entities.NewFulfillmentOrder(c, now))
	if err != nil {
		return entities.FulfillmentOrder{}, fmt.Errorf("%w: create order: %v", ErrDispatchFailure, err)
	}
	if created {
		d.log.Info("[order][dispatcher] order created",
			zap.String("order_id", order.ID),
			zap.String("contribution_id", c.ID),
			zap.String("total", order.Total.StringFixed(entities.MinorUnitDigits)),
		)
	} else {
		d.log.Debug("[order][dispatcher] order already exists", zap.String("order_id", order.ID))
	}

	if c.DispatchState == entities.DispatchStateLinked {
		return order, nil
	}

	linked, err := d.link(ctx, c)
	if err != nil {
		return order, fmt.Errorf("%w: link order: %v", ErrDispatchFailure, err)
	}
	if !linked {
		return order, nil
	}

	data := map[string]string{
		"product_name": c.ProductName,
		"total":        c.TotalPrice.StringFixed(entities.MinorUnitDigits),
		"collected":    order.Collected.StringFixed(entities.MinorUnitDigits),
		"currency":     c.Currency,
	}
	msgs := []entities.Notification{{
		Kind:           entities.NotificationGiftCompleted,
		ContributionID: c.ID,
		OrderID:        order.ID,
		Recipient:      c.Creator,
		Subject:        "Your group gift is fully funded",
		Data:           data,
		CreatedAt:      now,
	}}
	for _, p := range c.Participants {
		if !p.HasPaid || p.Email == c.Creator {
			continue
		}
		msgs = append(msgs, entities.Notification{
			Kind:           entities.NotificationGiftCompleted,
			ContributionID: c.ID,
			OrderID:        order.ID,
			Recipient:      p.Email,
			Subject:        "The gift you contributed to is on its way",
			Data:           data,
			CreatedAt:      now,
		})
	}
	publishAll(ctx, d.log, d.notifier, msgs...)
	return order, nil
}

// link marks the contribution's dispatch as done. It reports false when some
// other caller linked it first.
func (d *OrderDispatcher) link(ctx context.Context, c entities.Contribution) (bool, error) {
	for attempt := 1; attempt <= d.settings.MaxAttempts; attempt++ {
		_, err := d.contributions.CompareAndSwap(ctx, c.ID, c.Version, func(cur *entities.Contribution) error {
			if cur.DispatchState == entities.DispatchStateLinked {
				return errAlreadyLinked
			}
			cur.DispatchState = entities.DispatchStateLinked
			return nil
		})
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, errAlreadyLinked):
			return false, nil
		case !errors.Is(err, entities.ErrVersionConflict):
			return false, err
		}

		latest, err := d.contributions.GetByID(ctx, c.ID)
		if err != nil {
			return false, err
		}
		if latest.DispatchState == entities.DispatchStateLinked {
			return false, nil
		}
		c = latest
	}
	return false, ErrConcurrencyExhausted
}
