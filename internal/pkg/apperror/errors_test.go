package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/apperror"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"device not found", domain.ErrDeviceNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no tracks", domain.ErrNoTracks, http.StatusNotFound, "NO_TRACKS"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate imei", domain.ErrDeviceAlreadyExists, http.StatusConflict, "DEVICE_EXISTS"},
		{"date range", domain.ErrInvalidDateRange, http.StatusBadRequest, "INVALID_DATE_RANGE"},
		{"wrapped upstream format", fmt.Errorf("%w: not json", domain.ErrUpstreamFormat), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"invalid point", fmt.Errorf("summarizing: %w", domain.ErrInvalidPoint), http.StatusUnprocessableEntity, "INVALID_TRACK"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"password too long", fmt.Errorf("hashing password: %w", domain.ErrPasswordTooLong), http.StatusBadRequest, "PASSWORD_TOO_LONG"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperror.FromDomain(tt.err)

			assert.Equal(t, tt.status, appErr.StatusCode)
			assert.Equal(t, tt.code, appErr.Code)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromDomain_KeepsAppError(t *testing.T) {
	original := apperror.BadRequest("bad input")

	assert.Same(t, original, apperror.FromDomain(fmt.Errorf("handler: %w", original)))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, apperror.StatusCode(apperror.Conflict("dup")))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(errors.New("plain")))
}

func TestWrap(t *testing.T) {
	wrapped := apperror.Wrap(apperror.NotFound("device"), "loading device")

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode)
	assert.Equal(t, "loading device", wrapped.Message)
	assert.True(t, apperror.Is(wrapped))
}
