// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/crypto"
	"github.com/nstepura/go-secure-vault/models"
)

type vaultCodec struct {
	keychain crypto.Keychain
}

// NewVaultCodec builds the per-field codec on top of the given keychain.
func NewVaultCodec(keychain crypto.Keychain) VaultCodec {
	return &vaultCodec{keychain: keychain}
}

// EncryptItem encrypts every sensitive field of item under key.
// Mandatory fields (title, username, password) are always encrypted,
// even when empty. Optional fields (url, notes) are encrypted only when
// non-empty; an empty string becomes a nil pointer so the stored record
// does not grow ciphertext for fields the user never filled in.
func (c *vaultCodec) EncryptItem(item models.VaultItem, key []byte) (models.EncryptedVaultItem, error) {
	encTitle, err := c.keychain.EncryptField(item.Title, key)
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("encrypt title: %w", err)
	}
	encUsername, err := c.keychain.EncryptField(item.Username, key)
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("encrypt username: %w", err)
	}
	encPassword, err := c.keychain.EncryptField(item.Password, key)
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("encrypt password: %w", err)
	}

	out := models.EncryptedVaultItem{
		ID:        item.ID,
		Title:     encTitle,
		Username:  encUsername,
		Password:  encPassword,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	if item.URL != "" {
		encURL, err := c.keychain.EncryptField(item.URL, key)
		if err != nil {
			return models.EncryptedVaultItem{}, fmt.Errorf("encrypt url: %w", err)
		}
		out.URL = &encURL
	}
	if item.Notes != "" {
		encNotes, err := c.keychain.EncryptField(item.Notes, key)
		if err != nil {
			return models.EncryptedVaultItem{}, fmt.Errorf("encrypt notes: %w", err)
		}
		out.Notes = &encNotes
	}

	return out, nil
}

// DecryptItem reverses EncryptItem. Absent optional fields decrypt to
// the empty string. A corrupt field or wrong key fails the whole record;
// no partially decrypted item is ever returned.
func (c *vaultCodec) DecryptItem(item models.EncryptedVaultItem, key []byte) (models.VaultItem, error) {
	title, err := c.keychain.DecryptField(item.Title, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("decrypt title: %w", err)
	}
	username, err := c.keychain.DecryptField(item.Username, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("decrypt username: %w", err)
	}
	password, err := c.keychain.DecryptField(item.Password, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("decrypt password: %w", err)
	}

	out := models.VaultItem{
		ID:        item.ID,
		Title:     title,
		Username:  username,
		Password:  password,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	if item.URL != nil {
		url, err := c.keychain.DecryptField(*item.URL, key)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("decrypt url: %w", err)
		}
		out.URL = url
	}
	if item.Notes != nil {
		notes, err := c.keychain.DecryptField(*item.Notes, key)
		if err != nil {
			return models.VaultItem{}, fmt.Errorf("decrypt notes: %w", err)
		}
		out.Notes = notes
	}

	return out, nil
}
