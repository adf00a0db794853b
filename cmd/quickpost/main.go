// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command quickpost is the headless counterpart of the terminal client: it
// logs in, publishes a post, logs out or prints the session status, sharing
// the credential store with the interactive binary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quick-post/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := newCLI(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
