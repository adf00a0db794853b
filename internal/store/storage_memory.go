package store

import (
	"context"
	"fmt"
	"sync"
)

// memoryStore keeps credentials for the lifetime of the process.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore returns an empty in-process [CredentialStore].
func NewMemoryStore() CredentialStore {
	return &memoryStore{items: make(map[string][]byte)}
}

func (m *memoryStore) Save(ctx context.Context, account string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[account] = append([]byte(nil), value...)
	return nil
}

func (m *memoryStore) Read(ctx context.Context, account string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[account]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, account)
	}
	return append([]byte(nil), value...), nil
}

func (m *memoryStore) Delete(ctx context.Context, account string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, account)
	return nil
}
