package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/crypto"
	"github.com/MKhiriev/go-quick-post/internal/logger"
)

// NewCredentialStore builds the backend selected by cfg.Backend.
//
// For the sqlite backend it performs the following steps:
//  1. Derives the sealing key from cfg.EncryptionKey and cfg.Namespace.
//  2. Opens an SQLite connection to cfg.DSN, creating the file if it does
//     not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//
// The returned close function releases backend resources and is never nil.
func NewCredentialStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (CredentialStore, func() error, error) {
	noop := func() error { return nil }

	log.Info().Str("backend", cfg.Backend).Str("namespace", cfg.Namespace).Msg("creating credential store...")

	switch cfg.Backend {
	case config.BackendKeyring:
		return NewKeyringStore(cfg.Namespace), noop, nil

	case config.BackendMemory:
		return NewMemoryStore(), noop, nil

	case config.BackendSQLite:
		sealer, err := crypto.NewSealer(cfg.EncryptionKey, cfg.Namespace, crypto.DefaultKDFParams)
		if err != nil {
			return nil, noop, fmt.Errorf("create sealer: %w", err)
		}

		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteStore(db, sealer, cfg.Namespace, log), db.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
