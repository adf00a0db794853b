package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore(testNamespace)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "accessJwtKey", []byte("tok-1")))
	require.NoError(t, s.Save(ctx, "accessJwtKey", []byte("tok-2")))

	got, err := s.Read(ctx, "accessJwtKey")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-2"), got)

	// stored under the namespace as keyring service
	raw, err := keyring.Get(testNamespace, "accessJwtKey")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", raw)

	require.NoError(t, s.Delete(ctx, "accessJwtKey"))
	_, err = s.Read(ctx, "accessJwtKey")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestKeyringStore_DeleteAbsent(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore(testNamespace)

	assert.NoError(t, s.Delete(context.Background(), "didKey"))
}

func TestKeyringStore_NamespacesAreIsolated(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()

	a := NewKeyringStore("ns-a")
	b := NewKeyringStore("ns-b")

	require.NoError(t, a.Save(ctx, "didKey", []byte("did:plc:a")))

	_, err := b.Read(ctx, "didKey")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestKeyringStore_BackendError(t *testing.T) {
	backendErr := errors.New("secret service unavailable")
	keyring.MockInitWithError(backendErr)
	t.Cleanup(keyring.MockInit)

	s := NewKeyringStore(testNamespace)
	ctx := context.Background()

	err := s.Save(ctx, "didKey", []byte("x"))
	assert.ErrorIs(t, err, backendErr)

	_, err = s.Read(ctx, "didKey")
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "didKey"), backendErr)
}

func TestKeyringStore_CanceledContext(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore(testNamespace)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, "didKey", []byte("x")), context.Canceled)
}
