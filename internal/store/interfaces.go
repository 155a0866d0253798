// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import (
	"context"

	"github.com/nstepura/go-secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the server-side data-access contract for accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository is the server-side data-access contract for encrypted
// vault records. Every method is scoped by the owning user ID.
type VaultRepository interface {
	CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)
	GetItem(ctx context.Context, itemID string, userID int64) (models.EncryptedVaultItem, error)
	ListItems(ctx context.Context, userID int64) ([]models.EncryptedVaultItem, error)
	UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)
	DeleteItem(ctx context.Context, itemID string, userID int64) error
}
