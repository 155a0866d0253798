// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/models"
)

// vaultService implements VaultService. Records are opaque to it: every
// sensitive field arrives already encrypted and the service only checks
// the structural invariants the server is able to verify.
type vaultService struct {
	vaultRepository store.VaultRepository
	logger          *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{vaultRepository: vaultRepository, logger: logger}
}

// CreateItem persists a new record. A missing client-side ID gets a
// server-assigned UUID so older clients that never set one still work.
func (v *vaultService) CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		log.Error().Int64("user_id", item.UserID).Msg("invalid vault item provided")
		return models.EncryptedVaultItem{}, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	created, err := v.vaultRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Int64("user_id", item.UserID).Msg("vault item creation failed")
		return models.EncryptedVaultItem{}, fmt.Errorf("vault item creation failed: %w", err)
	}

	return created, nil
}

// GetItem loads a single record scoped to its owner. Asking for another
// user's record is indistinguishable from asking for a missing one.
func (v *vaultService) GetItem(ctx context.Context, itemID string, userID int64) (models.EncryptedVaultItem, error) {
	if itemID == "" {
		return models.EncryptedVaultItem{}, ErrInvalidDataProvided
	}

	item, err := v.vaultRepository.GetItem(ctx, itemID, userID)
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("vault item lookup failed: %w", err)
	}

	return item, nil
}

// ListItems returns every record owned by userID, newest first.
func (v *vaultService) ListItems(ctx context.Context, userID int64) ([]models.EncryptedVaultItem, error) {
	items, err := v.vaultRepository.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault items listing failed: %w", err)
	}

	return items, nil
}

// UpdateItem replaces every stored field of an existing record with the
// freshly encrypted values supplied by the client.
func (v *vaultService) UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	if item.ID == "" {
		return models.EncryptedVaultItem{}, ErrInvalidDataProvided
	}
	if err := validateItem(item); err != nil {
		log.Error().Str("item_id", item.ID).Int64("user_id", item.UserID).Msg("invalid vault item provided")
		return models.EncryptedVaultItem{}, err
	}

	updated, err := v.vaultRepository.UpdateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("item_id", item.ID).Int64("user_id", item.UserID).Msg("vault item update failed")
		return models.EncryptedVaultItem{}, fmt.Errorf("vault item update failed: %w", err)
	}

	return updated, nil
}

// DeleteItem removes a record scoped to its owner.
func (v *vaultService) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	if itemID == "" {
		return ErrInvalidDataProvided
	}

	if err := v.vaultRepository.DeleteItem(ctx, itemID, userID); err != nil {
		return fmt.Errorf("vault item deletion failed: %w", err)
	}

	return nil
}

// validateItem checks the only invariant the server can see through the
// encryption: the mandatory fields must carry ciphertext.
func validateItem(item models.EncryptedVaultItem) error {
	if item.Title == "" || item.Username == "" || item.Password == "" {
		return ErrInvalidDataProvided
	}

	return nil
}
