// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const credentialsTable = "credentials"

// credentialKey matches a single (service, account) row. An explicit And keeps
// the placeholder order stable.
func credentialKey(service, account string) sq.And {
	return sq.And{
		sq.Eq{"service": service},
		sq.Eq{"account": account},
	}
}

// buildUpsertCredentialQuery inserts a credential or replaces the value of the
// existing (service, account) row.
func buildUpsertCredentialQuery(service, account string, value []byte, updatedAt string) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("service", "account", "value", "updated_at").
		Values(service, account, value, updatedAt).
		Suffix("ON CONFLICT (service, account) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildSelectCredentialQuery(service, account string) (string, []any, error) {
	return sq.Select("value").
		From(credentialsTable).
		Where(credentialKey(service, account)).
		Limit(1).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteCredentialQuery(service, account string) (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(credentialKey(service, account)).
		PlaceholderFormat(sq.Question).
		ToSql()
}
