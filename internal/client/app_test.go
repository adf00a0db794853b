package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/tui"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())
	require.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	closeErr := errors.New("database is locked")
	uiErr := errors.New("could not open a new TTY")

	tests := []struct {
		name      string
		uiErr     error
		closeErr  error
		wantErrIs []error
	}{
		{name: "clean exit"},
		{name: "user quit is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: uiErr, wantErrIs: []error{uiErr}},
		{name: "close failure", closeErr: closeErr, wantErrIs: []error{closeErr}},
		{name: "both fail", uiErr: uiErr, closeErr: closeErr, wantErrIs: []error{uiErr, closeErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			closed := 0

			app, err := NewApp(ui, func() error {
				closed++
				return tt.closeErr
			}, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())

			assert.Equal(t, 1, ui.calls)
			assert.Equal(t, 1, closed)
			if len(tt.wantErrIs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrIs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestApp_NilCloser(t *testing.T) {
	app, err := NewApp(&stubUI{}, nil, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, app.Run(context.Background()))
}
