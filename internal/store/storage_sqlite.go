// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quick-post/internal/crypto"
	"github.com/MKhiriev/go-quick-post/internal/logger"
)

// sqliteStore keeps sealed credential values in the local sqlite database.
// Values are sealed with the account name as additional data, so a blob
// copied to another account fails to open.
type sqliteStore struct {
	db        *DB
	sealer    crypto.Sealer
	namespace string
	now       func() time.Time
	logger    *logger.Logger
}

// NewSQLiteStore returns a [CredentialStore] backed by db. The schema must be
// migrated beforehand.
func NewSQLiteStore(db *DB, sealer crypto.Sealer, namespace string, log *logger.Logger) CredentialStore {
	return &sqliteStore{
		db:        db,
		sealer:    sealer,
		namespace: namespace,
		now:       time.Now,
		logger:    log,
	}
}

func (s *sqliteStore) Save(ctx context.Context, account string, value []byte) error {
	log := logger.FromContext(ctx)

	sealed, err := s.sealer.Seal(value, []byte(account))
	if err != nil {
		log.Err(err).Str("func", "sqliteStore.Save").Str("account", account).Msg("failed to seal value")
		return fmt.Errorf("%w: %w", ErrSealing, err)
	}

	query, args, err := buildUpsertCredentialQuery(s.namespace, account, sealed, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteStore.Save").Str("account", account).Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Read(ctx context.Context, account string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialQuery(s.namespace, account)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrCredentialNotFound, account)
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteStore.Read").Str("account", account).Msg("failed to read credential")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	value, err := s.sealer.Open(sealed, []byte(account))
	if err != nil {
		log.Err(err).Str("func", "sqliteStore.Read").Str("account", account).Msg("failed to open sealed value")
		return nil, fmt.Errorf("%w: %w", ErrSealing, err)
	}

	return value, nil
}

func (s *sqliteStore) Delete(ctx context.Context, account string) error {
	query, args, err := buildDeleteCredentialQuery(s.namespace, account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteStore.Delete").
			Str("account", account).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
