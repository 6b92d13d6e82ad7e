package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			StatusCode: appErr.StatusCode,
			Err:        err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func BadGateway(message string) *AppError {
	return &AppError{
		Code:       "UPSTREAM_ERROR",
		Message:    message,
		StatusCode: http.StatusBadGateway,
	}
}

// FromDomain maps a domain sentinel to its HTTP representation. Unknown
// errors become Internal.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var mapped *AppError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		mapped = NotFound("user")
	case errors.Is(err, domain.ErrDeviceNotFound):
		mapped = NotFound("device")
	case errors.Is(err, domain.ErrReportNotFound):
		mapped = NotFound("report")
	case errors.Is(err, domain.ErrNoTracks):
		mapped = New("NO_TRACKS", "no location points found for this device and date range", http.StatusNotFound)
	case errors.Is(err, domain.ErrForbidden):
		mapped = Forbidden("access denied")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		mapped = New("USER_EXISTS", "identifier already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrDeviceAlreadyExists):
		mapped = New("DEVICE_EXISTS", "imei already registered", http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidLocation):
		mapped = New("INVALID_LOCATION", "invalid coordinates", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidDateRange):
		mapped = New("INVALID_DATE_RANGE", "start_date must not be after end_date", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidPoint), errors.Is(err, domain.ErrEmptyInput):
		mapped = New("INVALID_TRACK", "stored track contains unusable points", http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrUpstreamFormat):
		mapped = BadGateway("summarizer returned an unusable reply")
	case errors.Is(err, domain.ErrPasswordTooLong):
		mapped = New("PASSWORD_TOO_LONG", "password must not exceed 72 bytes", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		mapped = New("INVALID_CREDENTIALS", "invalid identifier or password", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrTokenExpired):
		mapped = New("TOKEN_EXPIRED", "refresh token expired", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrTokenRevoked):
		mapped = New("TOKEN_REVOKED", "refresh token revoked", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrTokenInvalid):
		mapped = New("TOKEN_INVALID", "invalid refresh token", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnauthorized):
		mapped = Unauthorized("unauthorized")
	default:
		return Internal(err)
	}

	mapped.Err = err
	return mapped
}
