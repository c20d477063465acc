package usecase

import (
	"context"
	"errors"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// IDeadlineReaper expires contributions whose deadline has passed.
type IDeadlineReaper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type DeadlineReaper struct {
	repo     interfaces.IContributionRepository
	notifier interfaces.INotificationPublisher
	log      *zap.Logger
}

var _ IDeadlineReaper = (*DeadlineReaper)(nil)

func NewDeadlineReaper(repo interfaces.IContributionRepository, notifier interfaces.INotificationPublisher, log *zap.Logger) *DeadlineReaper {
	if log == nil {
		log = zap.NewNop()
	}
	return &DeadlineReaper{repo: repo, notifier: notifier, log: log}
}

// Sweep moves every open or funding contribution with a deadline before now
// to expired and returns how many it expired. Losing a race to a concurrent
// writer is not an error.
func (r *DeadlineReaper) Sweep(ctx context.Context, now time.Time) (int, error) {
	ctx, span := tracer.Start(ctx, "DeadlineReaper.Sweep")
	defer span.End()

	candidates, err := r.repo.ListByStatus(ctx, entities.ContributionStatusOpen, entities.ContributionStatusFunding)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errs    []error
	)
	for _, c := range candidates {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if !c.Deadline.Before(now) {
			continue
		}

		updated, err := r.repo.CompareAndSwap(ctx, c.ID, c.Version, func(cur *entities.Contribution) error {
			return cur.TransitionTo(entities.ContributionStatusExpired)
		})
		if errors.Is(err, entities.ErrVersionConflict) || errors.Is(err, entities.ErrInvalidTransition) {
			r.log.Debug("[gift][reaper] skipped, record changed", zap.String("contribution_id", c.ID))
			continue
		}
		if err != nil {
			r.log.Error("[gift][reaper] expire failed", zap.String("contribution_id", c.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		expired++
		r.log.Info("[gift][reaper] contribution expired",
			zap.String("contribution_id", updated.ID),
			zap.Time("deadline", updated.Deadline),
		)
		publishAll(ctx, r.log, r.notifier, entities.Notification{
			Kind:           entities.NotificationGiftExpired,
			ContributionID: updated.ID,
			Recipient:      updated.Creator,
			Subject:        "Your group gift expired before it was funded",
			Data: map[string]string{
				"product_name": updated.ProductName,
				"collected":    updated.PaidTotal().StringFixed(entities.MinorUnitDigits),
				"currency":     updated.Currency,
			},
			CreatedAt: now,
		})
	}

	span.SetAttributes(attribute.Int("reaper.expired", expired))
	return expired, errors.Join(errs...)
}
