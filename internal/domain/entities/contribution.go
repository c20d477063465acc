package entities

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ContributionStatus represents the lifecycle of a collaborative gift.
//
// Allowed moves live in contributionTransitions; completed, expired and
// cancelled are terminal.
type ContributionStatus string

const (
	ContributionStatusOpen      ContributionStatus = "open"
	ContributionStatusFunding   ContributionStatus = "funding"
	ContributionStatusCompleted ContributionStatus = "completed"
	ContributionStatusExpired   ContributionStatus = "expired"
	ContributionStatusCancelled ContributionStatus = "cancelled"
)

var contributionTransitions = map[ContributionStatus][]ContributionStatus{
	ContributionStatusOpen: {
		ContributionStatusFunding,
		ContributionStatusCompleted,
		ContributionStatusExpired,
		ContributionStatusCancelled,
	},
	ContributionStatusFunding: {
		ContributionStatusFunding,
		ContributionStatusCompleted,
		ContributionStatusExpired,
		ContributionStatusCancelled,
	},
	ContributionStatusCompleted: {},
	ContributionStatusExpired:   {},
	ContributionStatusCancelled: {},
}

func (s ContributionStatus) IsValid() bool {
	_, ok := contributionTransitions[s]
	return ok
}

func (s ContributionStatus) IsTerminal() bool {
	return s.IsValid() && len(contributionTransitions[s]) == 0
}

func (s ContributionStatus) CanTransitionTo(target ContributionStatus) bool {
	for _, allowed := range contributionTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// DispatchState tracks the hand-off of a completed contribution to fulfillment.
type DispatchState string

const (
	DispatchStateNone    DispatchState = ""
	DispatchStatePending DispatchState = "pending"
	DispatchStateLinked  DispatchState = "linked"
)

// Participant is an invited contributor. Email is the key inside a contribution.
type Participant struct {
	Email       string          `json:"email"`
	ShareAmount decimal.Decimal `json:"share_amount"`
	HasPaid     bool            `json:"has_paid"`
	Declined    bool            `json:"declined"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	DeclinedAt  *time.Time      `json:"declined_at,omitempty"`
	PaymentLink string          `json:"payment_link,omitempty"`
}

// Resolved reports whether the participant has either paid or declined.
func (p Participant) Resolved() bool {
	return p.HasPaid || p.Declined
}

// Contribution is a shared-funding request for one product.
//
// Storage model (DynamoDB):
//   - PK: id
//   - every write goes through a conditional put on version
//
// Invariants:
//   - participant shares sum exactly to TotalPrice
//   - OrderRef is set iff Status is completed
type Contribution struct {
	ID            string             `json:"id"`
	ProductRef    string             `json:"product_ref"`
	ProductName   string             `json:"product_name,omitempty"`
	TotalPrice    decimal.Decimal    `json:"total_price"`
	Currency      string             `json:"currency"`
	Deadline      time.Time          `json:"deadline"`
	Creator       string             `json:"creator"`
	Participants  []Participant      `json:"participants"`
	Status        ContributionStatus `json:"status"`
	Version       int64              `json:"version"`
	OrderRef      string             `json:"order_ref,omitempty"`
	DispatchState DispatchState      `json:"dispatch_state,omitempty"`
	CancelledBy   string             `json:"cancelled_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}

// NormalizeEmail trims and lower-cases an address the way invitations store it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email parses as a bare address.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// Validate checks the structural invariants a store must enforce on create.
func (c Contribution) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if !c.TotalPrice.IsPositive() {
		return fmt.Errorf("%w: total price must be positive", ErrInvalidInput)
	}
	if len(c.Participants) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, c.Status)
	}

	seen := make(map[string]struct{}, len(c.Participants))
	for _, p := range c.Participants {
		if _, dup := seen[p.Email]; dup {
			return fmt.Errorf("%w: duplicate participant %s", ErrInvalidInput, p.Email)
		}
		seen[p.Email] = struct{}{}
		if !p.ShareAmount.IsPositive() {
			return fmt.Errorf("%w: share for %s must be positive", ErrInvalidInput, p.Email)
		}
		if p.HasPaid && p.Declined {
			return fmt.Errorf("%w: participant %s both paid and declined", ErrInvalidInput, p.Email)
		}
	}

	if sum := c.ShareTotal(); !sum.Equal(c.TotalPrice) {
		return fmt.Errorf("%w: shares sum to %s, total price is %s", ErrInvalidInput, sum.StringFixed(MinorUnitDigits), c.TotalPrice.StringFixed(MinorUnitDigits))
	}
	if (c.OrderRef != "") != (c.Status == ContributionStatusCompleted) {
		return fmt.Errorf("%w: order reference does not match status %s", ErrInvalidInput, c.Status)
	}
	return nil
}

// ParticipantIndex returns the position of email in Participants or -1.
func (c Contribution) ParticipantIndex(email string) int {
	email = NormalizeEmail(email)
	for i, p := range c.Participants {
		if p.Email == email {
			return i
		}
	}
	return -1
}

// FundingComplete holds when every participant has paid or declined and at
// least one of them paid. Declined shares do not count against funding.
func (c Contribution) FundingComplete() bool {
	if len(c.Participants) == 0 {
		return false
	}
	anyPaid := false
	for _, p := range c.Participants {
		if !p.Resolved() {
			return false
		}
		if p.HasPaid {
			anyPaid = true
		}
	}
	return anyPaid
}

func (c Contribution) ShareTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Participants {
		sum = sum.Add(p.ShareAmount)
	}
	return sum
}

// PaidTotal is the amount collected so far.
func (c Contribution) PaidTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Participants {
		if p.HasPaid {
			sum = sum.Add(p.ShareAmount)
		}
	}
	return sum
}

// PastDeadline reports whether now is after the deadline.
func (c Contribution) PastDeadline(now time.Time) bool {
	return now.After(c.Deadline)
}

// TransitionTo moves the contribution to target if the transition table allows it.
func (c *Contribution) TransitionTo(target ContributionStatus) error {
	if !c.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: contribution %s cannot move from %s to %s", ErrInvalidTransition, c.ID, c.Status, target)
	}
	c.Status = target
	return nil
}

// Clone returns a deep copy so store mutators never alias the stored record.
func (c Contribution) Clone() Contribution {
	out := c
	out.Participants = make([]Participant, len(c.Participants))
	for i, p := range c.Participants {
		out.Participants[i] = p
		out.Participants[i].PaidAt = cloneTime(p.PaidAt)
		out.Participants[i].DeclinedAt = cloneTime(p.DeclinedAt)
	}
	out.CompletedAt = cloneTime(c.CompletedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
