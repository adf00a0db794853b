// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported credential store backends.
const (
	BackendKeyring = "keyring"
	BackendSQLite  = "sqlite"
	// BackendMemory keeps credentials for the lifetime of the process only.
	BackendMemory = "memory"
)

// Default values applied before any other source is merged.
const (
	DefaultHTTPAddress    = "https://bsky.social"
	DefaultRequestTimeout = 30 * time.Second
	DefaultNamespace      = "com.yourapp.bluesky"
	DefaultDSN            = "quickpost.db"
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote XRPC server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the credential store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the XRPC server
	// (e.g. "https://bsky.social"). A missing scheme defaults to https.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups credential store settings.
type Storage struct {
	// Backend is one of "keyring", "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Namespace is the service name every credential is stored under.
	// Env: STORAGE_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// DB configures the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds settings of the sqlite credential backend.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// EncryptionKey is the secret the stored values are sealed with.
	// Required when Backend is "sqlite".
	// Env: STORAGE_DB_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path log entries are appended to. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Backend:   BackendKeyring,
			Namespace: DefaultNamespace,
			DB:        DB{DSN: DefaultDSN},
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the credential store selection.
type ClientStorage struct {
	Backend       string
	Namespace     string
	DSN           string
	EncryptionKey string
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the validated view of [StructuredConfig] the client
// binaries are wired from.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig loads defaults, environment variables, the process
// command-line flags and the optional JSON file, then validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return newClientConfig(cfg)
}

// GetClientConfigWithOverrides is like [GetClientConfig] but takes the
// flag-level values from overrides instead of parsing os.Args. The JSON file
// named by overrides, or else by the environment, wins over environment
// variables; non-zero fields of overrides win over everything.
func GetClientConfigWithOverrides(overrides StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSONFile(overrides.JSONFilePath).
		withConfig(&overrides).
		build()
	if err != nil {
		return nil, err
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Backend:       cfg.Storage.Backend,
			Namespace:     cfg.Storage.Namespace,
			DSN:           cfg.Storage.DB.DSN,
			EncryptionKey: cfg.Storage.DB.EncryptionKey,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
