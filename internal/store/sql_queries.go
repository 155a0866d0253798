// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	createVaultItem = `INSERT INTO vault_items (id, user_id, title, username, password, url, notes)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, user_id, title, username, password, url, notes, created_at, updated_at;`

	updateVaultItem = `UPDATE vault_items
    SET title = $1, username = $2, password = $3, url = $4, notes = $5, updated_at = NOW()
    WHERE id = $6 AND user_id = $7
    RETURNING id, user_id, title, username, password, url, notes, created_at, updated_at;`

	deleteVaultItem = `DELETE FROM vault_items
    WHERE id = $1 AND user_id = $2;`
)

// psql builds SELECT queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var vaultItemColumns = []string{"id", "user_id", "title", "username", "password", "url", "notes", "created_at", "updated_at"}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select("user_id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildGetVaultItemQuery(itemID string, userID int64) (string, []any, error) {
	return psql.
		Select(vaultItemColumns...).
		From("vault_items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
}

func buildListVaultItemsQuery(userID int64) (string, []any, error) {
	return psql.
		Select(vaultItemColumns...).
		From("vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}
