package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/tui"
)

// App runs the terminal UI and releases the credential store afterwards.
type App struct {
	ui     UI
	closer func() error
	logger *logger.Logger
}

// NewApp builds an [App]. closer may be nil.
func NewApp(ui UI, closer func() error, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}
	if closer == nil {
		closer = func() error { return nil }
	}
	return &App{ui: ui, closer: closer, logger: log}, nil
}

// Run blocks until the UI exits. Quitting with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) (err error) {
	a.logger.Info().Msg("client started")

	defer func() {
		if closeErr := a.closer(); closeErr != nil {
			a.logger.Err(closeErr).Msg("close credential store")
			err = errors.Join(err, fmt.Errorf("close credential store: %w", closeErr))
		}
		a.logger.Info().Msg("client stopped")
	}()

	if runErr := a.ui.Run(ctx); runErr != nil && !errors.Is(runErr, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}
