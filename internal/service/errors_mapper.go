// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
)

// XRPC error codes the client tells apart.
const (
	xrpcAuthenticationRequired = "AuthenticationRequired"
	xrpcExpiredToken           = "ExpiredToken"
	xrpcInvalidToken           = "InvalidToken"
)

// mapAdapterError adds a business sentinel to the adapter's transport error
// where the cause is known. The original chain, including ErrTransport, is
// kept intact.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case strings.Contains(msg, xrpcExpiredToken), strings.Contains(msg, xrpcInvalidToken):
			return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		case strings.Contains(msg, xrpcAuthenticationRequired):
			return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
		}

	case errors.Is(err, adapter.ErrBadRequest):
		if strings.Contains(msg, xrpcExpiredToken) {
			return fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	return err
}
