package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
)

const (
	DefaultMaxAttempts     = 5
	DefaultMaxParticipants = 3
	DefaultDeadline        = 72 * time.Hour
	DefaultCurrency        = "BRL"
	DefaultDispatchGrace   = 30 * time.Second
)

var tracer = otel.Tracer("gift_contribution/internal/usecase")

// Settings carries the tunables shared by the gift use cases.
//
// MaxAttempts bounds every read-mutate-CAS loop. MaxParticipants of zero
// disables the participant limit.
type Settings struct {
	MaxAttempts     int
	MaxParticipants int
	DefaultDeadline time.Duration
	Currency        string
	DispatchGrace   time.Duration
	Now             func() time.Time
}

func DefaultSettings() Settings {
	return Settings{
		MaxAttempts:     DefaultMaxAttempts,
		MaxParticipants: DefaultMaxParticipants,
		DefaultDeadline: DefaultDeadline,
		Currency:        DefaultCurrency,
		DispatchGrace:   DefaultDispatchGrace,
		Now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = d.MaxAttempts
	}
	if s.MaxParticipants < 0 {
		s.MaxParticipants = 0
	}
	if s.DefaultDeadline <= 0 {
		s.DefaultDeadline = d.DefaultDeadline
	}
	if s.Currency == "" {
		s.Currency = d.Currency
	}
	if s.DispatchGrace < 0 {
		s.DispatchGrace = 0
	}
	if s.Now == nil {
		s.Now = d.Now
	}
	return s
}

func (s Settings) now() time.Time {
	return s.Now()
}
