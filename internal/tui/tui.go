// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client: a login page and a
// compose page routed by [RootModel].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/service"
	"github.com/MKhiriev/go-quick-post/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	session   service.SessionService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions is replaced in tests to run without a terminal.
	programOptions []tea.ProgramOption
}

func New(session service.SessionService, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if session == nil {
		return nil, errors.New("tui: session service is nil")
	}
	return &TUI{
		session:        session,
		buildInfo:      buildInfo,
		logger:         log,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run blocks until the user quits. The compose page is opened directly when a
// session was restored from the credential store.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, runErr := tea.NewProgram(root, opts...).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("user quit the tui")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin:   NewLoginModel(ctx, t.session),
		pageCompose: NewComposeModel(ctx, t.session),
	}

	start := pageLogin
	if t.session.IsAuthenticated() {
		start = pageCompose
	}
	return NewRootModel(pages, start, t.buildInfo)
}
