package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists small secret values under a fixed namespace.
// Each value is addressed by an account name such as "accessJwtKey".
//
// Implementations must be safe for concurrent use.
type CredentialStore interface {
	// Save creates or replaces the value stored under account.
	Save(ctx context.Context, account string, value []byte) error

	// Read returns the value stored under account, or an error wrapping
	// [ErrCredentialNotFound] when nothing is stored there.
	Read(ctx context.Context, account string) ([]byte, error)

	// Delete removes the value stored under account. Deleting an absent
	// value is not an error.
	Delete(ctx context.Context, account string) error
}
