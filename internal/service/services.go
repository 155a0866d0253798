// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/store"
)

// Services bundles the server-side service layer.
type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(repositories *store.Repositories, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, cfg.App, logger),
		VaultService: NewVaultService(repositories.VaultRepository, logger),
	}
}
