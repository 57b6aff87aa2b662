package handler

import (
	"errors"
	"net/http"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
)

// StatusFor maps a domain error to its HTTP status. Unknown errors map to 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrInvalidDailyGoal):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownIdentifier),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnknownClient):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBusy),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIdentityCreationFailed),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRecordInsertionFailed),
		errors.Is(err, domain.ErrIDCollision):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// isFlowError reports whether err is an outcome of the login or registration
// flow, already turned into a message on the view.
func isFlowError(err error) bool {
	return !errors.Is(err, domain.ErrBusy) && !errors.Is(err, domain.ErrInvalidTransition)
}
