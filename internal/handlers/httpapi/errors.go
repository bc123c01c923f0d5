package httpapi

import (
	"errors"
	"net/http"

	ledgerService "github.com/gridlight/simonsays/internal/services/ledger"
	roundService "github.com/gridlight/simonsays/internal/services/round"
)

// statusFor maps service errors to HTTP statuses. Anything unmapped is an
// internal error and must not leak its message to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledgerService.ErrInvalidInput),
		errors.Is(err, roundService.ErrInvalidInput):
		return http.StatusBadRequest

	case errors.Is(err, ledgerService.ErrNotAuthorized),
		errors.Is(err, roundService.ErrNotRoundOwner):
		return http.StatusForbidden

	case errors.Is(err, roundService.ErrRoundNotFound),
		errors.Is(err, ledgerService.ErrDailyNotInitialized):
		return http.StatusNotFound

	case errors.Is(err, ledgerService.ErrAlreadyCompleted),
		errors.Is(err, ledgerService.ErrTriesExceeded),
		errors.Is(err, ledgerService.ErrNoRewards):
		return http.StatusConflict

	case errors.Is(err, ledgerService.ErrNotVerified):
		return http.StatusUnprocessableEntity

	case errors.Is(err, ledgerService.ErrInsufficientFunds):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
