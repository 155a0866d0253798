// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nstepura/go-secure-vault/internal/adapter"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/models"
)

type clientVaultService struct {
	adapter adapter.ServerAdapter
	cache   store.LocalVaultCache
	codec   VaultCodec
	session Session
	log     *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, cache store.LocalVaultCache, codec VaultCodec, session Session, log *logger.Logger) ClientVaultService {
	return &clientVaultService{adapter: serverAdapter, cache: cache, codec: codec, session: session, log: log}
}

// Create encrypts the item, assigns a client-side UUID and uploads it.
// The server response (with timestamps) is cached locally and returned
// decrypted.
func (v *clientVaultService) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	key, err := v.session.Get()
	if err != nil {
		return models.VaultItem{}, err
	}

	item.ID = uuid.NewString()
	encrypted, err := v.codec.EncryptItem(item, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("encrypt item for create: %w", err)
	}

	created, err := v.adapter.CreateItem(ctx, encrypted)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("create item on server: %w", err)
	}

	if err = v.cache.SaveItems(ctx, created); err != nil {
		v.log.Err(err).Str("item_id", created.ID).Msg("save created item to local cache")
	}

	return v.codec.DecryptItem(created, key)
}

// Get fetches one record, preferring the server and falling back to the
// local cache when the server is unreachable.
func (v *clientVaultService) Get(ctx context.Context, itemID string) (models.VaultItem, error) {
	key, err := v.session.Get()
	if err != nil {
		return models.VaultItem{}, err
	}

	encrypted, err := v.adapter.GetItem(ctx, itemID)
	if err != nil {
		v.log.Err(err).Str("item_id", itemID).Msg("server fetch failed, falling back to local cache")
		encrypted, err = v.cache.GetItem(ctx, itemID)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("get item from local cache: %w", err)
		}
	}

	return v.codec.DecryptItem(encrypted, key)
}

// List returns every record decrypted, newest first as ordered by the
// server. On success the local cache is replaced wholesale; on server
// failure the cached records serve as a read-only fallback.
func (v *clientVaultService) List(ctx context.Context) ([]models.VaultItem, error) {
	key, err := v.session.Get()
	if err != nil {
		return nil, err
	}

	encrypted, err := v.adapter.ListItems(ctx)
	if err != nil {
		v.log.Err(err).Msg("server list failed, falling back to local cache")
		encrypted, err = v.cache.ListItems(ctx)
		if err != nil {
			return nil, fmt.Errorf("list items from local cache: %w", err)
		}
	} else if cacheErr := v.cache.ReplaceAll(ctx, encrypted); cacheErr != nil {
		v.log.Err(cacheErr).Msg("refresh local cache after list")
	}

	items := make([]models.VaultItem, 0, len(encrypted))
	for _, enc := range encrypted {
		item, err := v.codec.DecryptItem(enc, key)
		if err != nil {
			return nil, fmt.Errorf("decrypt item %s: %w", enc.ID, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Update re-encrypts the full record and pushes it to the server. Fresh
// nonces are drawn for every field, so even unchanged fields produce new
// ciphertext.
func (v *clientVaultService) Update(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	key, err := v.session.Get()
	if err != nil {
		return models.VaultItem{}, err
	}

	if item.ID == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	encrypted, err := v.codec.EncryptItem(item, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("encrypt item for update: %w", err)
	}

	updated, err := v.adapter.UpdateItem(ctx, encrypted)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("update item on server: %w", err)
	}

	if err = v.cache.SaveItems(ctx, updated); err != nil {
		v.log.Err(err).Str("item_id", updated.ID).Msg("save updated item to local cache")
	}

	return v.codec.DecryptItem(updated, key)
}

// Delete removes the record on the server and from the local cache.
func (v *clientVaultService) Delete(ctx context.Context, itemID string) error {
	if _, err := v.session.Get(); err != nil {
		return err
	}

	if err := v.adapter.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete item on server: %w", err)
	}

	if err := v.cache.DeleteItem(ctx, itemID); err != nil {
		v.log.Err(err).Str("item_id", itemID).Msg("delete item from local cache")
	}

	return nil
}
