package service

import (
	"context"

	"github.com/MKhiriev/go-quick-post/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the authenticated session of the client and is the
// only component that talks to the credential store and the XRPC server.
//
// Implementations are safe for concurrent use. Remote calls are made without
// holding the session lock; only snapshot reads and state commits lock.
type SessionService interface {
	// Login exchanges identifier and password for a session via
	// com.atproto.server.createSession. On success both session fields are
	// persisted, the in-memory session is replaced and the bearer token is
	// returned.
	//
	// Returns [ErrInvalidInput] for a blank identifier or an empty password
	// without contacting the server, an error wrapping [ErrTransport] for a
	// network failure or a non-2xx status, and [ErrInvalidResponse] when a 2xx
	// body lacks accessJwt or did. A storage failure is returned as is. On any
	// error the in-memory session and the stored credentials are unchanged.
	Login(ctx context.Context, identifier, password string) (string, error)

	// Logout clears the in-memory session and deletes both stored fields.
	// It is idempotent. Storage failures are returned after the in-memory
	// session has been cleared.
	Logout(ctx context.Context) error

	// CreatePost publishes text as an app.bsky.feed.post record stamped with
	// the current UTC time. Any 2xx response is success.
	//
	// Returns [ErrNotAuthenticated] without contacting the server when no
	// session is held, and an error wrapping [ErrTransport] when the request
	// fails. The session is never modified.
	CreatePost(ctx context.Context, text string) (bool, error)

	// Session returns a snapshot of the current session.
	Session() models.Session

	// IsAuthenticated reports whether a full session is held.
	IsAuthenticated() bool
}
