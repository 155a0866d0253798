// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"

	"github.com/nstepura/go-secure-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VaultCodec converts between the plaintext and encrypted representations
// of a vault record. Every sensitive field is encrypted independently;
// ID and timestamps pass through untouched.
type VaultCodec interface {
	// EncryptItem encrypts title, username, password and, when present,
	// url and notes. An empty optional field maps to a nil ciphertext
	// pointer so that absence survives the round trip.
	EncryptItem(item models.VaultItem, key []byte) (models.EncryptedVaultItem, error)

	// DecryptItem reverses EncryptItem. A single corrupt field fails
	// the whole record: a partially decrypted item is worse than an
	// error.
	DecryptItem(item models.EncryptedVaultItem, key []byte) (models.VaultItem, error)
}

// Session caches the derived vault key for the lifetime of one
// authenticated session. A session belongs to exactly one client
// instance; the key is never shared across users or processes.
type Session interface {
	// Set stores a copy of the vault key, replacing any previous one.
	Set(key []byte)

	// Get returns a copy of the cached key or ErrNotAuthenticated when
	// no login has happened (or Clear was called).
	Get() ([]byte, error)

	// Clear wipes the cached key. Subsequent Get calls fail until the
	// next Set.
	Clear()
}

// ClientAuthService drives the register and login exchanges with the
// server and owns the client side of the zero-knowledge scheme: the
// master password is consumed by key derivation and the derived key is
// parked in the Session, nothing else of it survives the call.
type ClientAuthService interface {
	Register(ctx context.Context, cred models.MasterCredential) error
	Login(ctx context.Context, cred models.MasterCredential) error

	// Logout drops the session key and the adapter's bearer token.
	Logout()
}

// ClientVaultService is the client-side vault CRUD facade. It encrypts
// before anything leaves the process and decrypts after fetch, keeping a
// local encrypted cache so listings survive a server outage.
type ClientVaultService interface {
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	Get(ctx context.Context, itemID string) (models.VaultItem, error)
	List(ctx context.Context) ([]models.VaultItem, error)
	Update(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	Delete(ctx context.Context, itemID string) error
}

// PasswordGenerator produces random passwords honouring a composition
// policy.
type PasswordGenerator interface {
	// Generate returns a password of the configured length containing
	// at least one character from every enabled class. Randomness comes
	// from crypto/rand.
	Generate(policy models.PasswordPolicy) (string, error)
}
