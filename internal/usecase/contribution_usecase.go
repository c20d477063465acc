package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	ErrInvalidProductRef   = fmt.Errorf("%w: invalid product ref", entities.ErrInvalidInput)
	ErrInvalidTotalPrice   = fmt.Errorf("%w: total price must be positive with at most two decimals", entities.ErrInvalidInput)
	ErrInvalidDeadline     = fmt.Errorf("%w: deadline must be in the future", entities.ErrInvalidInput)
	ErrInvalidParticipants = fmt.Errorf("%w: invalid participant list", entities.ErrInvalidInput)
	ErrMissingCreator      = fmt.Errorf("%w: missing creator", entities.ErrInvalidInput)
	ErrMissingListFilter   = fmt.Errorf("%w: creator or email is required", entities.ErrInvalidInput)
)

// CreateContributionInput is what a creator submits to start a group gift.
// A nil Deadline means now plus the configured default.
type CreateContributionInput struct {
	ProductRef        string
	ProductName       string
	TotalPrice        decimal.Decimal
	Deadline          *time.Time
	Creator           string
	ParticipantEmails []string
}

// IContributionUseCase exposes the contribution lifecycle outside of payments:
//   - POST /gift            => Create()
//   - GET /gift/:id         => GetByID()
//   - GET /gift?email=      => ListForUser()
//   - POST /gift/:id/cancel => Cancel()
type IContributionUseCase interface {
	Create(ctx context.Context, in CreateContributionInput) (entities.Contribution, error)
	GetByID(ctx context.Context, id string) (entities.Contribution, error)
	ListForUser(ctx context.Context, creator, email string) ([]entities.Contribution, error)
	Cancel(ctx context.Context, id, actor string) (entities.Contribution, error)
}

type ContributionUseCase struct {
	repo     interfaces.IContributionRepository
	links    interfaces.IPaymentLinkProvider
	notifier interfaces.INotificationPublisher
	log      *zap.Logger
	settings Settings
}

var _ IContributionUseCase = (*ContributionUseCase)(nil)

func NewContributionUseCase(
	repo interfaces.IContributionRepository,
	links interfaces.IPaymentLinkProvider,
	notifier interfaces.INotificationPublisher,
	log *zap.Logger,
	settings Settings,
) *ContributionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContributionUseCase{
		repo:     repo,
		links:    links,
		notifier: notifier,
		log:      log,
		settings: settings.withDefaults(),
	}
}

func (u *ContributionUseCase) Create(ctx context.Context, in CreateContributionInput) (entities.Contribution, error) {
	ctx, span := tracer.Start(ctx, "ContributionUseCase.Create")
	defer span.End()

	in.ProductRef = strings.TrimSpace(in.ProductRef)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Creator = entities.NormalizeEmail(in.Creator)
	if in.ProductRef == "" {
		return entities.Contribution{}, ErrInvalidProductRef
	}
	if in.Creator == "" {
		return entities.Contribution{}, ErrMissingCreator
	}
	if !in.TotalPrice.IsPositive() || !in.TotalPrice.Shift(entities.MinorUnitDigits).IsInteger() {
		return entities.Contribution{}, ErrInvalidTotalPrice
	}

	now := u.settings.now()
	deadline := now.Add(u.settings.DefaultDeadline)
	if in.Deadline != nil {
		deadline = in.Deadline.UTC()
	}
	if !deadline.After(now) {
		return entities.Contribution{}, ErrInvalidDeadline
	}

	emails, err := u.normalizeParticipants(in.ParticipantEmails)
	if err != nil {
		return entities.Contribution{}, err
	}
	shares, err := entities.SplitShares(in.TotalPrice, len(emails))
	if err != nil {
		return entities.Contribution{}, fmt.Errorf("%w: %v", ErrInvalidTotalPrice, err)
	}

	c := entities.Contribution{
		ID:           uuid.NewString(),
		ProductRef:   in.ProductRef,
		ProductName:  in.ProductName,
		TotalPrice:   in.TotalPrice,
		Currency:     u.settings.Currency,
		Deadline:     deadline,
		Creator:      in.Creator,
		Participants: make([]entities.Participant, len(emails)),
		Status:       entities.ContributionStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i, email := range emails {
		c.Participants[i] = entities.Participant{Email: email, ShareAmount: shares[i]}
	}
	span.SetAttributes(
		attribute.String("contribution.id", c.ID),
		attribute.Int("contribution.participants", len(emails)),
	)

	if u.links != nil {
		for i := range c.Participants {
			link, err := u.links.CreatePaymentLink(ctx, c, c.Participants[i])
			if err != nil {
				u.log.Warn("[gift][usecase] payment link unavailable",
					zap.String("contribution_id", c.ID),
					zap.String("email", c.Participants[i].Email),
					zap.Error(err),
				)
				continue
			}
			c.Participants[i].PaymentLink = link
		}
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Contribution{}, err
	}
	u.log.Info("[gift][usecase] contribution created",
		zap.String("contribution_id", created.ID),
		zap.String("creator", created.Creator),
		zap.String("total_price", created.TotalPrice.StringFixed(entities.MinorUnitDigits)),
		zap.Int("participants", len(created.Participants)),
	)

	invites := make([]entities.Notification, 0, len(created.Participants))
	for _, p := range created.Participants {
		invites = append(invites, entities.Notification{
			Kind:           entities.NotificationGiftInvitation,
			ContributionID: created.ID,
			Recipient:      p.Email,
			Subject:        fmt.Sprintf("%s invited you to a group gift", created.Creator),
			Data: map[string]string{
				"product_name": created.ProductName,
				"share_amount": p.ShareAmount.StringFixed(entities.MinorUnitDigits),
				"currency":     created.Currency,
				"deadline":     created.Deadline.Format(time.RFC3339),
				"payment_link": p.PaymentLink,
			},
			CreatedAt: now,
		})
	}
	publishAll(ctx, u.log, u.notifier, invites...)
	return created, nil
}

func (u *ContributionUseCase) normalizeParticipants(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", ErrInvalidParticipants)
	}
	if u.settings.MaxParticipants > 0 && len(raw) > u.settings.MaxParticipants {
		return nil, fmt.Errorf("%w: at most %d participants", ErrInvalidParticipants, u.settings.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		e = entities.NormalizeEmail(e)
		if !entities.ValidEmail(e) {
			return nil, fmt.Errorf("%w: malformed email %q", ErrInvalidParticipants, e)
		}
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("%w: duplicate email %s", ErrInvalidParticipants, e)
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

func (u *ContributionUseCase) GetByID(ctx context.Context, id string) (entities.Contribution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contribution{}, ErrInvalidContributionID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contribution{}, err
	}
	if c.ID == "" {
		return entities.Contribution{}, ErrContributionNotFound
	}
	return c, nil
}

func (u *ContributionUseCase) ListForUser(ctx context.Context, creator, email string) ([]entities.Contribution, error) {
	creator = entities.NormalizeEmail(creator)
	email = entities.NormalizeEmail(email)
	if creator == "" && email == "" {
		return nil, ErrMissingListFilter
	}
	return u.repo.ListForUser(ctx, creator, email)
}

// Cancel is the administrative exit for an unfinished contribution. A
// contribution that already reached a terminal status is returned as is.
func (u *ContributionUseCase) Cancel(ctx context.Context, id, actor string) (entities.Contribution, error) {
	ctx, span := tracer.Start(ctx, "ContributionUseCase.Cancel")
	defer span.End()
	span.SetAttributes(attribute.String("contribution.id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contribution{}, ErrInvalidContributionID
	}
	actor = strings.TrimSpace(actor)

	for attempt := 1; attempt <= u.settings.MaxAttempts; attempt++ {
		c, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Contribution{}, err
		}
		if c.ID == "" {
			return entities.Contribution{}, ErrContributionNotFound
		}
		if c.Status.IsTerminal() {
			u.log.Info("[gift][usecase] cancel ignored, contribution already closed",
				zap.String("contribution_id", c.ID),
				zap.String("status", string(c.Status)),
			)
			return c, nil
		}

		updated, err := u.repo.CompareAndSwap(ctx, c.ID, c.Version, func(cur *entities.Contribution) error {
			if err := cur.TransitionTo(entities.ContributionStatusCancelled); err != nil {
				return err
			}
			cur.CancelledBy = actor
			return nil
		})
		if errors.Is(err, entities.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Contribution{}, err
		}
		u.log.Info("[gift][usecase] contribution cancelled",
			zap.String("contribution_id", updated.ID),
			zap.String("cancelled_by", actor),
		)
		return updated, nil
	}
	return entities.Contribution{}, fmt.Errorf("%w: %d attempts", ErrConcurrencyExhausted, u.settings.MaxAttempts)
}
