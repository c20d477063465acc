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

// IPaymentRecorder applies participant responses to a contribution.
//
// Both operations are idempotent for the same participant and response, and
// each successful write is followed by a completion check.
type IPaymentRecorder interface {
	RecordPayment(ctx context.Context, contributionID, email string) (entities.Contribution, error)
	RecordDecline(ctx context.Context, contributionID, email string) (entities.Contribution, error)
}

type participantResponse int

const (
	responsePaid participantResponse = iota
	responseDeclined
)

func (r participantResponse) String() string {
	if r == responseDeclined {
		return "decline"
	}
	return "payment"
}

type PaymentRecorder struct {
	repo     interfaces.IContributionRepository
	detector ICompletionDetector
	log      *zap.Logger
	settings Settings
}

var _ IPaymentRecorder = (*PaymentRecorder)(nil)

func NewPaymentRecorder(repo interfaces.IContributionRepository, detector ICompletionDetector, log *zap.Logger, settings Settings) *PaymentRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentRecorder{repo: repo, detector: detector, log: log, settings: settings.withDefaults()}
}

func (r *PaymentRecorder) RecordPayment(ctx context.Context, contributionID, email string) (entities.Contribution, error) {
	return r.record(ctx, contributionID, email, responsePaid)
}

func (r *PaymentRecorder) RecordDecline(ctx context.Context, contributionID, email string) (entities.Contribution, error) {
	return r.record(ctx, contributionID, email, responseDeclined)
}

func (r *PaymentRecorder) record(ctx context.Context, contributionID, email string, resp participantResponse) (entities.Contribution, error) {
	ctx, span := tracer.Start(ctx, "PaymentRecorder.record")
	defer span.End()

	contributionID = strings.TrimSpace(contributionID)
	email = entities.NormalizeEmail(email)
	span.SetAttributes(
		attribute.String("contribution.id", contributionID),
		attribute.String("participant.response", resp.String()),
	)
	if contributionID == "" {
		return entities.Contribution{}, ErrInvalidContributionID
	}
	if !entities.ValidEmail(email) {
		return entities.Contribution{}, ErrInvalidParticipantEmail
	}

	for attempt := 1; attempt <= r.settings.MaxAttempts; attempt++ {
		c, err := r.repo.GetByID(ctx, contributionID)
		if err != nil {
			return entities.Contribution{}, err
		}
		if c.ID == "" {
			return entities.Contribution{}, ErrContributionNotFound
		}

		idx := c.ParticipantIndex(email)
		if idx < 0 {
			return entities.Contribution{}, ErrUnknownParticipant
		}
		p := c.Participants[idx]
		switch resp {
		case responsePaid:
			if p.Declined {
				return entities.Contribution{}, ErrAlreadyDeclined
			}
			if p.HasPaid {
				r.log.Debug("[gift][payment] payment replay", zap.String("contribution_id", c.ID), zap.String("email", email))
				return c, nil
			}
		case responseDeclined:
			if p.HasPaid {
				return entities.Contribution{}, ErrAlreadyPaid
			}
			if p.Declined {
				r.log.Debug("[gift][payment] decline replay", zap.String("contribution_id", c.ID), zap.String("email", email))
				return c, nil
			}
		}

		now := r.settings.now()
		if c.Status.IsTerminal() {
			return entities.Contribution{}, fmt.Errorf("%w: status is %s", ErrContributionClosed, c.Status)
		}
		if c.PastDeadline(now) {
			return entities.Contribution{}, fmt.Errorf("%w: deadline %s has passed", ErrContributionClosed, c.Deadline.Format("2006-01-02T15:04:05Z07:00"))
		}

		updated, err := r.repo.CompareAndSwap(ctx, c.ID, c.Version, func(cur *entities.Contribution) error {
			target := &cur.Participants[idx]
			if resp == responsePaid {
				target.HasPaid = true
				target.PaidAt = &now
			} else {
				target.Declined = true
				target.DeclinedAt = &now
			}
			return cur.TransitionTo(entities.ContributionStatusFunding)
		})
		if errors.Is(err, entities.ErrVersionConflict) {
			r.log.Debug("[gift][payment] version conflict, retrying",
				zap.String("contribution_id", c.ID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return entities.Contribution{}, err
		}

		r.log.Info("[gift][payment] response recorded",
			zap.String("contribution_id", updated.ID),
			zap.String("email", email),
			zap.String("response", resp.String()),
			zap.Int64("version", updated.Version),
		)

		if r.detector == nil {
			return updated, nil
		}
		evaluated, _, err := r.detector.Evaluate(ctx, updated.ID)
		if err != nil {
			// The response is durable; the dispatch retrier picks up whatever
			// the evaluation left undone.
			r.log.Error("[gift][payment] completion check failed",
				zap.String("contribution_id", updated.ID),
				zap.Error(err),
			)
			if evaluated.ID != "" {
				return evaluated, nil
			}
			return updated, nil
		}
		return evaluated, nil
	}

	r.log.Warn("[gift][payment] giving up after repeated conflicts",
		zap.String("contribution_id", contributionID),
		zap.Int("attempts", r.settings.MaxAttempts),
	)
	return entities.Contribution{}, fmt.Errorf("%w: %d attempts", ErrConcurrencyExhausted, r.settings.MaxAttempts)
}
