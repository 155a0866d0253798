// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"

	"github.com/nstepura/go-secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles server-side account management and token lifecycle.
// The server authenticates the account password only; it never sees the
// vault key derived from it on the client.
type AuthService interface {
	// RegisterUser creates a new account. The plaintext password is
	// replaced by its bcrypt hash before it reaches the repository.
	// Returns store.ErrEmailAlreadyExists wrapped if the email is taken.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied password against the stored bcrypt
	// hash. Returns ErrWrongPassword on mismatch without revealing
	// whether the account exists.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT carrying the user ID in the
	// "sub" claim.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string (signature, expiry, issuer)
	// and returns the decoded token. Any validation failure is
	// normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService handles server-side storage of encrypted vault records.
// Field values arrive and leave as opaque ciphertext; the service can
// order, address and own-check records but never read them.
type VaultService interface {
	CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)
	GetItem(ctx context.Context, itemID string, userID int64) (models.EncryptedVaultItem, error)
	ListItems(ctx context.Context, userID int64) ([]models.EncryptedVaultItem, error)
	UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error)
	DeleteItem(ctx context.Context, itemID string, userID int64) error
}
