// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

// Package adapter provides transport-layer abstractions for communicating
// with the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/nstepura/go-secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package. Vault records cross this boundary encrypted
// only.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// ClearToken drops the stored bearer token. Subsequent authenticated
	// requests fail with [ErrUnauthorized] until the next login.
	ClearToken()

	// Register creates an account on the server. On success the returned
	// bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the server. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateItem uploads a new encrypted record and returns it with
	// server-assigned timestamps.
	CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)

	// GetItem fetches a single encrypted record by its ID.
	GetItem(ctx context.Context, itemID string) (models.EncryptedVaultItem, error)

	// ListItems fetches every encrypted record of the authenticated
	// user, newest first.
	ListItems(ctx context.Context) ([]models.EncryptedVaultItem, error)

	// UpdateItem replaces all stored fields of an existing record.
	UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)

	// DeleteItem removes a record by its ID.
	DeleteItem(ctx context.Context, itemID string) error
}
