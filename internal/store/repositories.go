// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import "github.com/nstepura/go-secure-vault/internal/logger"

// Repositories bundles the server-side data-access layer.
type Repositories struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:  NewUserRepository(db, logger),
		VaultRepository: NewVaultRepository(db, logger),
	}
}
