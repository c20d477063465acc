package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestContribution(emails ...string) Contribution {
	shares, _ := SplitShares(decimal.RequireFromString("10.00"), len(emails))
	ps := make([]Participant, len(emails))
	for i, e := range emails {
		ps[i] = Participant{Email: e, ShareAmount: shares[i]}
	}
	return Contribution{
		ID:           "c-1",
		ProductRef:   "prod-1",
		TotalPrice:   decimal.RequireFromString("10.00"),
		Deadline:     time.Now().Add(time.Hour),
		Participants: ps,
		Status:       ContributionStatusOpen,
		Version:      1,
	}
}

func TestContributionStatus_CanTransitionTo(t *testing.T) {
	all := []ContributionStatus{
		ContributionStatusOpen,
		ContributionStatusFunding,
		ContributionStatusCompleted,
		ContributionStatusExpired,
		ContributionStatusCancelled,
	}
	allowed := map[ContributionStatus]map[ContributionStatus]bool{
		ContributionStatusOpen: {
			ContributionStatusFunding: true, ContributionStatusCompleted: true,
			ContributionStatusExpired: true, ContributionStatusCancelled: true,
		},
		ContributionStatusFunding: {
			ContributionStatusFunding: true, ContributionStatusCompleted: true,
			ContributionStatusExpired: true, ContributionStatusCancelled: true,
		},
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
	for _, s := range []ContributionStatus{ContributionStatusCompleted, ContributionStatusExpired, ContributionStatusCancelled} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	if ContributionStatus("pending").IsValid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestContribution_TransitionToRejectsLeavingTerminal(t *testing.T) {
	c := newTestContribution("a@x.com")
	c.Status = ContributionStatusExpired
	err := c.TransitionTo(ContributionStatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if c.Status != ContributionStatusExpired {
		t.Fatalf("status must not change on rejected transition")
	}
}

func TestContribution_FundingComplete(t *testing.T) {
	t.Run("nobody resolved", func(t *testing.T) {
		c := newTestContribution("a@x.com", "b@x.com")
		if c.FundingComplete() {
			t.Fatalf("expected incomplete")
		}
	})
	t.Run("one declined, rest paid", func(t *testing.T) {
		c := newTestContribution("a@x.com", "b@x.com", "c@x.com")
		c.Participants[0].Declined = true
		c.Participants[1].HasPaid = true
		c.Participants[2].HasPaid = true
		if !c.FundingComplete() {
			t.Fatalf("declined participant must be excluded from funding")
		}
	})
	t.Run("everyone declined", func(t *testing.T) {
		c := newTestContribution("a@x.com", "b@x.com")
		c.Participants[0].Declined = true
		c.Participants[1].Declined = true
		if c.FundingComplete() {
			t.Fatalf("at least one payment is required")
		}
	})
	t.Run("one still pending", func(t *testing.T) {
		c := newTestContribution("a@x.com", "b@x.com")
		c.Participants[0].HasPaid = true
		if c.FundingComplete() {
			t.Fatalf("expected incomplete")
		}
	})
}

func TestContribution_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := newTestContribution("a@x.com", "b@x.com").Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("duplicate email", func(t *testing.T) {
		c := newTestContribution("a@x.com", "a@x.com")
		if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("shares do not sum", func(t *testing.T) {
		c := newTestContribution("a@x.com", "b@x.com")
		c.Participants[0].ShareAmount = decimal.RequireFromString("5.01")
		if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("paid and declined", func(t *testing.T) {
		c := newTestContribution("a@x.com")
		c.Participants[0].HasPaid = true
		c.Participants[0].Declined = true
		if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("order ref without completion", func(t *testing.T) {
		c := newTestContribution("a@x.com")
		c.OrderRef = OrderIDFor(c.ID)
		if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
	t.Run("no participants", func(t *testing.T) {
		c := newTestContribution("a@x.com")
		c.Participants = nil
		if err := c.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestContribution_ParticipantIndexNormalizes(t *testing.T) {
	c := newTestContribution("a@x.com", "b@x.com")
	if got := c.ParticipantIndex("  B@X.com "); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := c.ParticipantIndex("z@x.com"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestContribution_CloneDoesNotAlias(t *testing.T) {
	now := time.Now()
	c := newTestContribution("a@x.com")
	c.Participants[0].PaidAt = &now
	cp := c.Clone()
	cp.Participants[0].HasPaid = true
	*cp.Participants[0].PaidAt = now.Add(time.Hour)
	if c.Participants[0].HasPaid || !c.Participants[0].PaidAt.Equal(now) {
		t.Fatalf("clone must not share participant state")
	}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@x.com":       true,
		"":              false,
		"not-an-email":  false,
		"Name <a@x.io>": false,
	}
	for in, want := range cases {
		if got := ValidEmail(in); got != want {
			t.Fatalf("ValidEmail(%q): expected %v, got %v", in, want, got)
		}
	}
}
