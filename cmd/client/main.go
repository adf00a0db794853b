package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
	"github.com/MKhiriev/go-quick-post/internal/client"
	"github.com/MKhiriev/go-quick-post/internal/config"
	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/service"
	"github.com/MKhiriev/go-quick-post/internal/store"
	"github.com/MKhiriev/go-quick-post/internal/tui"
	"github.com/MKhiriev/go-quick-post/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-quick-post-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-quick-post-client", cfg.Log.File, cfg.Log.Level)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	credentialStore, closeStore, err := store.NewCredentialStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create credential store")
	}

	session := service.NewSessionService(credentialStore, serverAdapter, log)

	ui, err := tui.New(session, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, closeStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
