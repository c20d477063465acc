package handlers

import (
	"errors"
	"net/http"

	"gift_contribution/internal/domain/entities"
	"gift_contribution/internal/usecase"
	"gift_contribution/pkg"
)

// HeaderUserID carries the caller identity set by the upstream gateway.
const HeaderUserID = "X-User-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContributionNotFound):
		return pkg.NewDomainErrorSimple("CONTRIBUTION_NOT_FOUND", "Contribution not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownParticipant):
		return pkg.NewDomainErrorSimple("PARTICIPANT_NOT_FOUND", "Email is not a participant of this contribution", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyDeclined):
		return pkg.NewDomainErrorSimple("PARTICIPANT_DECLINED", "Participant already declined", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("PARTICIPANT_PAID", "Participant already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrContributionClosed):
		return pkg.NewDomainErrorSimple("CONTRIBUTION_CLOSED", "Contribution is no longer accepting responses", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyExhausted):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Too many concurrent updates, try again", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTab):
		return pkg.NewDomainErrorSimple("INVALID_TAB", "Unknown order tab", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
