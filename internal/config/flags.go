package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args into a fresh
// [StructuredConfig]. Unset flags leave zero values so they do not override
// other sources.
//
// Flags:
//
//	-a server base URL (e.g. https://bsky.social)
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-backend credential store backend: keyring | sqlite | memory
//	-namespace credential namespace
//	-d sqlite database path
//	-encryption-key sqlite value encryption secret
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-quick-post", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address        string
		requestTimeout time.Duration
		backend        string
		namespace      string
		dsn            string
		encryptionKey  string
		logLevel       string
		logFile        string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "Server base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&backend, "backend", "", "Credential store backend (keyring|sqlite|memory)")
	fs.StringVar(&namespace, "namespace", "", "Credential namespace")
	fs.StringVar(&dsn, "d", "", "SQLite database path")
	fs.StringVar(&encryptionKey, "encryption-key", "", "SQLite value encryption secret")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Backend:   backend,
			Namespace: namespace,
			DB: DB{
				DSN:           dsn,
				EncryptionKey: encryptionKey,
			},
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
