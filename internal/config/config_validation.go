// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package config

import "time"

// validate normalizes the merged [StructuredConfig] and applies defaults
// for values every runtime needs. Hard requirements (database DSN, token
// sign key) are checked by the role-specific views, because the client
// does not need the server's secrets and vice versa.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = time.Hour
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "go-secure-vault"
	}

	return nil
}

// validate checks server-side invariants of [ServerConfig].
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.App.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// validate checks client-side invariants of [ClientConfig].
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
