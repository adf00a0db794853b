package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func transportErr(status error, detail string) error {
	return fmt.Errorf("%w: %w: %s", adapter.ErrTransport, status, detail)
}

func TestMapAdapterError(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"wrong password", transportErr(adapter.ErrUnauthorized, "AuthenticationRequired: Invalid identifier or password"), ErrWrongCredentials},
		{"expired token", transportErr(adapter.ErrUnauthorized, "ExpiredToken: Token has expired"), ErrTokenIsExpired},
		{"invalid token", transportErr(adapter.ErrUnauthorized, "InvalidToken: Bad token"), ErrTokenIsExpired},
		{"expired token as 400", transportErr(adapter.ErrBadRequest, "ExpiredToken: Token has expired"), ErrTokenIsExpired},
		{"rate limited", transportErr(adapter.ErrTooManyRequests, "RateLimitExceeded"), ErrRateLimited},
		{"unknown 401", transportErr(adapter.ErrUnauthorized, "Something"), adapter.ErrUnauthorized},
		{"plain", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			if tt.in != plain {
				// the transport chain is preserved
				assert.ErrorIs(t, got, ErrTransport)
			}
		})
	}
}
