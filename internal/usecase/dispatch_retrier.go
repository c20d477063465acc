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

// IDispatchRetrier finishes hand-offs that a crash or a transient store error
// left behind.
type IDispatchRetrier interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}

type DispatchRetrier struct {
	repo       interfaces.IContributionRepository
	detector   ICompletionDetector
	dispatcher IOrderDispatcher
	log        *zap.Logger
	grace      time.Duration
}

var _ IDispatchRetrier = (*DispatchRetrier)(nil)

func NewDispatchRetrier(
	repo interfaces.IContributionRepository,
	detector ICompletionDetector,
	dispatcher IOrderDispatcher,
	log *zap.Logger,
	settings Settings,
) *DispatchRetrier {
	if log == nil {
		log = zap.NewNop()
	}
	return &DispatchRetrier{
		repo:       repo,
		detector:   detector,
		dispatcher: dispatcher,
		log:        log,
		grace:      settings.withDefaults().DispatchGrace,
	}
}

// Sweep re-dispatches completed contributions still pending after the grace
// period, and re-evaluates funding contributions whose participants have all
// responded but whose completion check never ran. It returns the number of
// contributions it acted on.
func (r *DispatchRetrier) Sweep(ctx context.Context, now time.Time) (int, error) {
	ctx, span := tracer.Start(ctx, "DispatchRetrier.Sweep")
	defer span.End()

	var (
		handled int
		errs    []error
	)

	completed, err := r.repo.ListByStatus(ctx, entities.ContributionStatusCompleted)
	if err != nil {
		return 0, err
	}
	cutoff := now.Add(-r.grace)
	for _, c := range completed {
		if c.DispatchState != entities.DispatchStatePending {
			continue
		}
		if c.CompletedAt != nil && c.CompletedAt.After(cutoff) {
			continue
		}
		order, err := r.dispatcher.Dispatch(ctx, c.ID)
		if err != nil {
			r.log.Error("[gift][retrier] dispatch retry failed", zap.String("contribution_id", c.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		handled++
		r.log.Info("[gift][retrier] dispatch recovered",
			zap.String("contribution_id", c.ID),
			zap.String("order_id", order.ID),
		)
	}

	funding, err := r.repo.ListByStatus(ctx, entities.ContributionStatusFunding)
	if err != nil {
		errs = append(errs, err)
		return handled, errors.Join(errs...)
	}
	for _, c := range funding {
		if !c.FundingComplete() || c.UpdatedAt.After(cutoff) {
			continue
		}
		_, dispatched, err := r.detector.Evaluate(ctx, c.ID)
		if err != nil {
			r.log.Error("[gift][retrier] completion check failed", zap.String("contribution_id", c.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if dispatched {
			handled++
			r.log.Info("[gift][retrier] stalled contribution completed", zap.String("contribution_id", c.ID))
		}
	}

	span.SetAttributes(attribute.Int("retrier.handled", handled))
	return handled, errors.Join(errs...)
}
