// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package server manages the lifecycle of the vault HTTP server:
// startup, signal handling, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer wraps handler in an [http.Server] bound to the configured
// address, with read and write timeouts taken from cfg.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

// RunServer starts the HTTP server and blocks until SIGTERM, SIGINT or
// SIGQUIT arrives, then shuts down gracefully.
func (h *httpServer) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		h.Shutdown()

		close(idleConnectionsClosed)
	}()

	h.logger.Info().Str("address", h.server.Addr).Msg("Launching HTTP server")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
		return
	}

	<-idleConnectionsClosed
	h.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown gracefully stops the HTTP server.
func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
