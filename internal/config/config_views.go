// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the server-specific view of the merged configuration.
type ServerConfig struct {
	// App contains token parameters and the application version.
	App App
	// Server contains the listen address and request timeout.
	Server Server
	// Storage contains the relational database settings.
	Storage Storage
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// KDFIterations is the PBKDF2 work factor for vault key derivation.
	KDFIterations int
	// Version is the client build version.
	Version string
}

// ClientConfig is the client-specific view of the merged configuration.
type ClientConfig struct {
	// App contains client application settings.
	App ClientApp
	// Adapter contains the server base URL and outbound timeout.
	Adapter Adapter
	// Storage contains the local cache settings.
	Storage Storage
	// Clipboard contains the secret-exposure window settings.
	Clipboard Clipboard
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			KDFIterations: cfg.App.KDFIterations,
			Version:       cfg.App.Version,
		},
		Adapter:   cfg.Adapter,
		Storage:   cfg.Storage,
		Clipboard: cfg.Clipboard,
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
