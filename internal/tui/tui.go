// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package tui implements the interactive terminal client: registration
// and login, vault browsing and editing, password generation, and
// guarded clipboard copies with an on-screen countdown.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nstepura/go-secure-vault/internal/clipboard"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/service"
)

type TUI struct {
	services *service.ClientServices
	guard    *clipboard.Guard
	logger   *logger.Logger
}

func New(services *service.ClientServices, guard *clipboard.Guard, log *logger.Logger) (*TUI, error) {
	if services == nil || guard == nil {
		return nil, errors.New("tui: services and guard are required")
	}
	return &TUI{services: services, guard: guard, logger: log}, nil
}

// Run drives the whole interactive session in a single Bubble Tea
// program. Logging out returns to the welcome screen without restarting
// the program; quitting returns nil.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.guard)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
