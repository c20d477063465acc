package usecase

import (
	"errors"
	"fmt"

	"gift_contribution/internal/domain/entities"
)

var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrUnknownParticipant   = errors.New("email is not a participant of this contribution")
	ErrAlreadyDeclined      = errors.New("participant already declined")
	ErrAlreadyPaid          = errors.New("participant already paid")
	ErrConcurrencyExhausted = errors.New("too many concurrent updates, retry later")
	ErrDispatchFailure      = errors.New("order dispatch failed")

	// ErrContributionClosed is returned for writes against an expired,
	// cancelled or past-deadline contribution.
	ErrContributionClosed = fmt.Errorf("%w: contribution is closed", entities.ErrInvalidTransition)

	ErrInvalidContributionID   = fmt.Errorf("%w: invalid contribution id", entities.ErrInvalidInput)
	ErrInvalidParticipantEmail = fmt.Errorf("%w: invalid participant email", entities.ErrInvalidInput)
)
