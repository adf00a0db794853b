// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to an AT Protocol
// XRPC server such as https://bsky.social.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every failure to obtain a 2xx response wraps [ErrTransport]. Non-2xx
// responses additionally wrap a status sentinel (e.g. [ErrUnauthorized] for
// 401) so that callers can use [errors.Is] for transport-agnostic error
// handling. A 2xx body that cannot be decoded wraps [ErrInvalidResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quick-post/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the XRPC server. Implementations
// are responsible for serialisation, the bearer header and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// CreateSession calls com.atproto.server.createSession. The response is
	// returned as decoded; checking that the required fields are present is
	// left to the caller. Returns an error wrapping [ErrInvalidResponse] if a
	// 2xx body is not a JSON object of the expected shape.
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error)

	// CreateRecord calls com.atproto.repo.createRecord with token as bearer.
	// Any 2xx status is success; the response body is not inspected.
	CreateRecord(ctx context.Context, token string, req models.CreateRecordRequest) error
}
