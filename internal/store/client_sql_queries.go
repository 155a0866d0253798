// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS vault_items (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			username   TEXT NOT NULL,
			password   TEXT NOT NULL,
			url        TEXT,
			notes      TEXT,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		);`

	upsertCachedItem = `
		INSERT INTO vault_items (
			id,
			title,
			username,
			password,
			url,
			notes,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title      = excluded.title,
			username   = excluded.username,
			password   = excluded.password,
			url        = excluded.url,
			notes      = excluded.notes,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at;`

	getCachedItem = `
		SELECT
			id,
			title,
			username,
			password,
			url,
			notes,
			created_at,
			updated_at
		FROM vault_items
		WHERE id = $1;`

	getAllCachedItems = `
		SELECT
			id,
			title,
			username,
			password,
			url,
			notes,
			created_at,
			updated_at
		FROM vault_items
		ORDER BY created_at DESC;`

	deleteCachedItem = `DELETE FROM vault_items WHERE id = $1;`

	clearCachedItems = `DELETE FROM vault_items;`
)
