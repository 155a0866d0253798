// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package http implements the HTTP transport layer of the vault server.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are
// handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
