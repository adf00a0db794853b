package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/logger"
)

func TestNewCredentialStore_Backends(t *testing.T) {
	keyring.MockInit()

	tests := []struct {
		name    string
		backend string
		want    any
		wantErr error
	}{
		{name: "keyring", backend: config.BackendKeyring, want: &keyringStore{}},
		{name: "memory", backend: config.BackendMemory, want: &memoryStore{}},
		{name: "unknown", backend: "s3", wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, closeFn, err := NewCredentialStore(context.Background(), config.ClientStorage{
				Backend:   tt.backend,
				Namespace: testNamespace,
			}, logger.Nop())
			require.NotNil(t, closeFn)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			assert.NoError(t, closeFn())
		})
	}
}

func TestNewCredentialStore_SQLiteNeedsKey(t *testing.T) {
	_, _, err := NewCredentialStore(context.Background(), config.ClientStorage{
		Backend:   config.BackendSQLite,
		Namespace: testNamespace,
		DSN:       filepath.Join(t.TempDir(), "quickpost.db"),
	}, logger.Nop())

	assert.Error(t, err)
}

// TestNewCredentialStore_SQLiteRoundTrip opens a real database file, migrates
// it and checks values survive reopening.
func TestNewCredentialStore_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		Backend:       config.BackendSQLite,
		Namespace:     testNamespace,
		DSN:           filepath.Join(t.TempDir(), "nested", "quickpost.db"),
		EncryptionKey: "correct horse battery staple",
	}

	s, closeFn, err := NewCredentialStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "accessJwtKey", []byte("tok-1")))
	require.NoError(t, s.Save(ctx, "accessJwtKey", []byte("tok-2")))
	require.NoError(t, s.Save(ctx, "didKey", []byte("did:plc:abc")))
	require.NoError(t, closeFn())

	reopened, closeFn, err := NewCredentialStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	tok, err := reopened.Read(ctx, "accessJwtKey")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-2"), tok)

	require.NoError(t, reopened.Delete(ctx, "didKey"))
	_, err = reopened.Read(ctx, "didKey")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}
