package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrAlreadyPending, http.StatusTooManyRequests},
		{ErrExpired, http.StatusGone},
		{ErrDeadlinePassed, http.StatusGone},
		{ErrNoActiveCode, http.StatusBadRequest},
		{ErrMismatch, http.StatusBadRequest},
		{ErrDeliveryFailed, http.StatusBadGateway},
		{ErrConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusCode(tc.err); got != tc.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestStatusCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("sending reset code: %w", ErrDeliveryFailed)
	if got := StatusCode(err); got != http.StatusBadGateway {
		t.Errorf("StatusCode(wrapped) = %d, want %d", got, http.StatusBadGateway)
	}
}
