// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import (
	"context"

	"github.com/nstepura/go-secure-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalVaultCache is the client-side cache of encrypted vault records.
// Records are stored exactly as the server returned them, ciphertext and
// all, so the cache is as unreadable at rest as the server database.
type LocalVaultCache interface {
	// SaveItems inserts or replaces the given records.
	SaveItems(ctx context.Context, items ...models.EncryptedVaultItem) error

	// GetItem returns a single cached record or ErrItemNotFound.
	GetItem(ctx context.Context, itemID string) (models.EncryptedVaultItem, error)

	// ListItems returns every cached record, newest first.
	ListItems(ctx context.Context) ([]models.EncryptedVaultItem, error)

	// ReplaceAll atomically replaces the whole cache with items.
	ReplaceAll(ctx context.Context, items []models.EncryptedVaultItem) error

	// DeleteItem removes a record. Deleting a missing record is not an
	// error.
	DeleteItem(ctx context.Context, itemID string) error
}
