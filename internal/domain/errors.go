package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooLong     = errors.New("password exceeds 72 bytes")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrDeviceNotFound      = errors.New("device not found")
	ErrDeviceAlreadyExists = errors.New("device already exists")
	ErrInvalidLocation     = errors.New("invalid location")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrNoTracks            = errors.New("no tracks found")
	ErrReportNotFound      = errors.New("report not found")

	// Trip analytics
	ErrEmptyInput     = errors.New("no location points supplied")
	ErrInvalidPoint   = errors.New("invalid location point")
	ErrUpstreamFormat = errors.New("summarizer returned an unparseable payload")
)
