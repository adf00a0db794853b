// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.Namespace) == "" {
		return fmt.Errorf("%w: empty namespace", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendKeyring, BackendMemory:
	case BackendSQLite:
		if isMemoryDSN(cfg.Storage.DSN) {
			return fmt.Errorf("%w: sqlite backend needs a file dsn", ErrInvalidStorageConfigs)
		}
		if cfg.Storage.EncryptionKey == "" {
			return fmt.Errorf("%w: sqlite backend needs an encryption key", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}

// isMemoryDSN reports whether dsn names no file: empty, ":memory:" or a URI
// with mode=memory.
func isMemoryDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") {
		return true
	}
	_, query, ok := strings.Cut(dsn, "?")
	if !ok {
		return false
	}
	for _, param := range strings.Split(query, "&") {
		if param == "mode=memory" {
			return true
		}
	}
	return false
}
