package apperr

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by all services. Handlers translate them to HTTP
// status codes with StatusCode; services return them (optionally wrapped)
// instead of ad hoc errors.New calls.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("missing or invalid session")
	ErrForbidden          = errors.New("insufficient role")
	ErrAlreadyPending     = errors.New("a reset code is already pending")
	ErrExpired            = errors.New("reset code expired")
	ErrNoActiveCode       = errors.New("no active reset code")
	ErrMismatch           = errors.New("values do not match")
	ErrDeliveryFailed     = errors.New("failed to deliver email")
	ErrConflict           = errors.New("resource already exists")
	ErrDeadlinePassed     = errors.New("application deadline has passed")
)

// StatusCode maps a service error to its HTTP status. Unknown errors are
// treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyPending):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrExpired), errors.Is(err, ErrDeadlinePassed):
		return http.StatusGone
	case errors.Is(err, ErrNoActiveCode), errors.Is(err, ErrMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrDeliveryFailed):
		return http.StatusBadGateway
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// JSON builds the uniform error body used by every handler.
func JSON(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}
