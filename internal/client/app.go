// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package client wires the terminal client together and owns its
// lifecycle.
package client

import (
	"context"
	"errors"

	"github.com/nstepura/go-secure-vault/internal/clipboard"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	guard    *clipboard.Guard
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, guard *clipboard.Guard, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || guard == nil {
		return nil, errors.New("client: services, ui and guard are required")
	}
	return &App{services: services, ui: ui, guard: guard, logger: log}, nil
}

// Run drives the interactive session until the user quits. Whatever the
// exit path, the session key is wiped and any guarded secret is removed
// from the clipboard before returning.
func (a *App) Run() error {
	ctx := context.Background()

	defer func() {
		a.services.Session.Clear()
		a.guard.Clear()
	}()

	a.logger.Info().Msg("starting vault client")
	return a.ui.Run(ctx)
}
