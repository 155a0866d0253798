// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import (
	"context"
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// VaultCache is the SQLite-backed cache of encrypted vault records.
	VaultCache LocalVaultCache
}

// NewClientStorages opens the local cache database, bootstraps its
// schema and returns the wired storage layer.
func NewClientStorages(cfg config.Local, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		VaultCache: NewLocalVaultCache(db, logger),
	}, nil
}
