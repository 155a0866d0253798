// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/models"
)

// localVaultCache is the SQLite-backed implementation of
// [LocalVaultCache]. The cache belongs to one user's client instance and
// is dropped wholesale on every successful server listing, so it never
// accumulates records the server no longer knows about.
type localVaultCache struct {
	db     *DB
	logger *logger.Logger
}

func NewLocalVaultCache(db *DB, logger *logger.Logger) LocalVaultCache {
	return &localVaultCache{
		db:     db,
		logger: logger,
	}
}

func (l *localVaultCache) SaveItems(ctx context.Context, items ...models.EncryptedVaultItem) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		_, err := l.db.ExecContext(ctx, upsertCachedItem,
			item.ID,
			item.Title,
			item.Username,
			item.Password,
			optionalCipher(item.URL),
			optionalCipher(item.Notes),
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localVaultCache.SaveItems").
				Str("item_id", item.ID).
				Msg("failed to execute upsert for cached item")
			return fmt.Errorf("failed to cache vault item (id=%s): %w", item.ID, err)
		}
	}

	return nil
}

func (l *localVaultCache) GetItem(ctx context.Context, itemID string) (models.EncryptedVaultItem, error) {
	row := l.db.QueryRowContext(ctx, getCachedItem, itemID)

	item, err := scanCachedItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedVaultItem{}, ErrItemNotFound
		}
		return models.EncryptedVaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (l *localVaultCache) ListItems(ctx context.Context) ([]models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	rows, err := l.db.QueryContext(ctx, getAllCachedItems)
	if err != nil {
		log.Err(err).Str("func", "localVaultCache.ListItems").Msg("failed to query cached items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.EncryptedVaultItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanCachedItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// ReplaceAll clears the cache and inserts items inside one transaction,
// so readers never observe a half-refreshed cache.
func (l *localVaultCache) ReplaceAll(ctx context.Context, items []models.EncryptedVaultItem) error {
	log := logger.FromContext(ctx)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearCachedItems); err != nil {
		log.Err(err).Str("func", "localVaultCache.ReplaceAll").Msg("failed to clear cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, upsertCachedItem,
			item.ID,
			item.Title,
			item.Username,
			item.Password,
			optionalCipher(item.URL),
			optionalCipher(item.Notes),
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localVaultCache.ReplaceAll").
				Str("item_id", item.ID).
				Msg("failed to insert cached item")
			return fmt.Errorf("failed to cache vault item (id=%s): %w", item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localVaultCache) DeleteItem(ctx context.Context, itemID string) error {
	if _, err := l.db.ExecContext(ctx, deleteCachedItem, itemID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// scanCachedItem reads one cached row in column order. The cache table
// has no user_id column: the whole file belongs to one user.
func scanCachedItem(row rowScanner) (models.EncryptedVaultItem, error) {
	var (
		item       models.EncryptedVaultItem
		url, notes sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Username,
		&item.Password,
		&url,
		&notes,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.EncryptedVaultItem{}, err
	}

	if url.Valid {
		cipher := models.CipherText(url.String)
		item.URL = &cipher
	}
	if notes.Valid {
		cipher := models.CipherText(notes.String)
		item.Notes = &cipher
	}

	return item, nil
}
