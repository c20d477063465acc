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

// ICompletionDetector decides whether a contribution is fully funded and, if
// so, moves it to completed exactly once.
//
// Evaluate returns dispatched=true only for the caller whose CAS performed the
// transition. Losers get the latest record and dispatched=false.
type ICompletionDetector interface {
	Evaluate(ctx context.Context, contributionID string) (c entities.Contribution, dispatched bool, err error)
}

type CompletionDetector struct {
	repo       interfaces.IContributionRepository
	dispatcher IOrderDispatcher
	log        *zap.Logger
	settings   Settings
}

var _ ICompletionDetector = (*CompletionDetector)(nil)

func NewCompletionDetector(repo interfaces.IContributionRepository, dispatcher IOrderDispatcher, log *zap.Logger, settings Settings) *CompletionDetector {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompletionDetector{repo: repo, dispatcher: dispatcher, log: log, settings: settings.withDefaults()}
}

func (d *CompletionDetector) Evaluate(ctx context.Context, contributionID string) (entities.Contribution, bool, error) {
	ctx, span := tracer.Start(ctx, "CompletionDetector.Evaluate")
	defer span.End()
	span.SetAttributes(attribute.String("contribution.id", contributionID))

	contributionID = strings.TrimSpace(contributionID)
	if contributionID == "" {
		return entities.Contribution{}, false, ErrInvalidContributionID
	}

	c, err := d.repo.GetByID(ctx, contributionID)
	if err != nil {
		return entities.Contribution{}, false, err
	}
	if c.ID == "" {
		return entities.Contribution{}, false, ErrContributionNotFound
	}
	if c.Status.IsTerminal() || !c.FundingComplete() {
		return c, false, nil
	}

	now := d.settings.now()
	completed, err := d.repo.CompareAndSwap(ctx, c.ID, c.Version, func(cur *entities.Contribution) error {
		if err := cur.TransitionTo(entities.ContributionStatusCompleted); err != nil {
			return err
		}
		cur.OrderRef = entities.OrderIDFor(cur.ID)
		cur.DispatchState = entities.DispatchStatePending
		cur.CompletedAt = &now
		return nil
	})
	if errors.Is(err, entities.ErrVersionConflict) || errors.Is(err, entities.ErrInvalidTransition) {
		// Another writer got there first. Once every participant is resolved the
		// only later writes are terminal moves, so the winner handles dispatch.
		d.log.Debug("[gift][detector] lost completion race",
			zap.String("contribution_id", c.ID),
			zap.Int64("version", c.Version),
		)
		latest, rerr := d.repo.GetByID(ctx, c.ID)
		if rerr != nil {
			return c, false, rerr
		}
		return latest, false, nil
	}
	if err != nil {
		return c, false, err
	}

	d.log.Info("[gift][detector] contribution completed",
		zap.String("contribution_id", completed.ID),
		zap.String("order_ref", completed.OrderRef),
		zap.String("collected", completed.PaidTotal().StringFixed(entities.MinorUnitDigits)),
	)

	if d.dispatcher == nil {
		return completed, true, nil
	}
	if _, err := d.dispatcher.Dispatch(ctx, completed.ID); err != nil {
		d.log.Error("[gift][detector] dispatch failed, left pending for retry",
			zap.String("contribution_id", completed.ID),
			zap.Error(err),
		)
		if !errors.Is(err, ErrDispatchFailure) {
			err = fmt.Errorf("%w: %v", ErrDispatchFailure, err)
		}
		return completed, true, err
	}

	latest, err := d.repo.GetByID(ctx, completed.ID)
	if err != nil || latest.ID == "" {
		return completed, true, nil
	}
	return latest, true, nil
}
