package service

import (
	"errors"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
)

// Transport-level errors, re-exported so callers need not import adapter.
var (
	ErrTransport       = adapter.ErrTransport
	ErrInvalidResponse = adapter.ErrInvalidResponse
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrWrongCredentials is returned together with ErrTransport when the
	// server rejects the identifier or password.
	ErrWrongCredentials = errors.New("wrong identifier or password")

	// ErrTokenIsExpired is returned together with ErrTransport when the
	// server rejects the stored bearer token. The session is kept; the user
	// has to log in again.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrRateLimited is returned together with ErrTransport on HTTP 429.
	ErrRateLimited = errors.New("rate limited")
)
