package adapter

import "errors"

var (
	// ErrTransport marks any failure to obtain a 2xx response: connection
	// errors, timeouts, cancellation and non-2xx statuses.
	ErrTransport = errors.New("transport error")

	// ErrInvalidResponse marks a 2xx response whose body does not decode.
	ErrInvalidResponse = errors.New("invalid response")
)

// Status sentinels. They are always wrapped together with [ErrTransport].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
