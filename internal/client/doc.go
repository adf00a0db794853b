// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI to the session service and owns the process
// lifecycle: the credential store is closed when the UI exits.
package client
