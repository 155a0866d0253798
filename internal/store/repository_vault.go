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

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It executes all vault-record CRUD operations
// against the "vault_items" table. Field values are opaque ciphertext;
// only id, user_id and the timestamps carry meaning at this layer.
type vaultRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the
// provided database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists a new record and returns it with server-assigned
// timestamps via the RETURNING clause.
func (r *vaultRepository) CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVaultItem,
		item.ID, item.UserID, item.Title, item.Username, item.Password,
		optionalCipher(item.URL), optionalCipher(item.Notes))

	saved, err := scanVaultItem(row)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateItem").Int64("user_id", item.UserID).Msg("failed to insert vault item")
		return models.EncryptedVaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetItem retrieves a single record scoped by owner. A record owned by
// another user surfaces as [ErrItemNotFound].
func (r *vaultRepository) GetItem(ctx context.Context, itemID string, userID int64) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetVaultItemQuery(itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetItem").Msg("failed to build query")
		return models.EncryptedVaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanVaultItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedVaultItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetItem").Str("item_id", itemID).Int64("user_id", userID).Msg("failed to query vault item")
		return models.EncryptedVaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// ListItems returns every record owned by userID ordered by creation
// time, newest first.
func (r *vaultRepository) ListItems(ctx context.Context, userID int64) ([]models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultItemsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListItems").Int64("user_id", userID).Msg("failed to query vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.EncryptedVaultItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanVaultItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*vaultRepository.ListItems").Int64("user_id", userID).Msg("failed to scan vault item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// UpdateItem replaces all stored fields of an existing record and bumps
// updated_at. Returns [ErrItemNotFound] when no row matches (id, user_id).
func (r *vaultRepository) UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateVaultItem,
		item.Title, item.Username, item.Password,
		optionalCipher(item.URL), optionalCipher(item.Notes),
		item.ID, item.UserID)

	updated, err := scanVaultItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedVaultItem{}, ErrItemNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.UpdateItem").Str("item_id", item.ID).Int64("user_id", item.UserID).Msg("failed to update vault item")
		return models.EncryptedVaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteItem removes a record scoped by owner. Returns [ErrItemNotFound]
// when nothing was deleted.
func (r *vaultRepository) DeleteItem(ctx context.Context, itemID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteVaultItem, itemID, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteItem").Str("item_id", itemID).Int64("user_id", userID).Msg("failed to delete vault item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanVaultItem reads one vault_items row in column order. Nullable url
// and notes columns map to nil pointers.
func scanVaultItem(row rowScanner) (models.EncryptedVaultItem, error) {
	var (
		item       models.EncryptedVaultItem
		url, notes sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
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

// optionalCipher converts an optional ciphertext pointer to a driver
// value, storing NULL for absent fields.
func optionalCipher(c *models.CipherText) any {
	if c == nil {
		return nil
	}
	return string(*c)
}
