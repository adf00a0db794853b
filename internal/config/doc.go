// Package config provides configuration loading, merging, and validation
// facilities for the go-quick-post binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (or explicit overrides supplied by a CLI framework)
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for binaries that own the
// process flags and [GetClientConfigWithOverrides] for binaries whose flags
// are parsed elsewhere.
package config
