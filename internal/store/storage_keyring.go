package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// keyringStore keeps credentials in the OS keyring (macOS Keychain, Secret
// Service, Windows Credential Manager). The namespace is the keyring service
// name and the account is the keyring user.
type keyringStore struct {
	namespace string
}

// NewKeyringStore returns a [CredentialStore] backed by the OS keyring.
func NewKeyringStore(namespace string) CredentialStore {
	return &keyringStore{namespace: namespace}
}

func (k *keyringStore) Save(ctx context.Context, account string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := keyring.Set(k.namespace, account, string(value)); err != nil {
		return fmt.Errorf("keyring set %s: %w", account, err)
	}
	return nil
}

func (k *keyringStore) Read(ctx context.Context, account string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret, err := keyring.Get(k.namespace, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, account)
	}
	if err != nil {
		return nil, fmt.Errorf("keyring get %s: %w", account, err)
	}

	return []byte(secret), nil
}

func (k *keyringStore) Delete(ctx context.Context, account string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := keyring.Delete(k.namespace, account)
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("keyring delete %s: %w", account, err)
}
