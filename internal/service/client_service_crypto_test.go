// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nstepura/go-secure-vault/internal/crypto"
	"github.com/nstepura/go-secure-vault/internal/mock"
	"github.com/nstepura/go-secure-vault/models"
)

func testVaultKey(t *testing.T) []byte {
	t.Helper()

	kc := crypto.NewKeychain(1000)
	key, err := kc.DeriveKey(models.MasterCredential{
		Email:          "alice@example.com",
		MasterPassword: "correct-horse",
	})
	require.NoError(t, err)

	return key
}

func TestVaultCodec_RoundTrip(t *testing.T) {
	codec := NewVaultCodec(crypto.NewKeychain(1000))
	key := testVaultKey(t)

	now := time.Now().UTC()
	item := models.VaultItem{
		ID:        "0c9adf44-2c2f-4f4e-b0fb-6bb3e0f5a111",
		Title:     "GitHub",
		Username:  "alice",
		Password:  "p@ssw0rd!",
		URL:       "https://github.com",
		Notes:     "work account",
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	encrypted, err := codec.EncryptItem(item, key)
	require.NoError(t, err)

	// Ciphertext must not echo the plaintext.
	assert.NotEqual(t, item.Title, string(encrypted.Title))
	assert.NotEqual(t, item.Password, string(encrypted.Password))
	require.NotNil(t, encrypted.URL)
	require.NotNil(t, encrypted.Notes)

	// ID and timestamps stay in the clear.
	assert.Equal(t, item.ID, encrypted.ID)
	assert.Equal(t, item.CreatedAt, encrypted.CreatedAt)

	decrypted, err := codec.DecryptItem(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, item, decrypted)
}

func TestVaultCodec_OptionalFieldsAbsent(t *testing.T) {
	codec := NewVaultCodec(crypto.NewKeychain(1000))
	key := testVaultKey(t)

	item := models.VaultItem{
		Title:    "router admin",
		Username: "admin",
		Password: "hunter2",
	}

	encrypted, err := codec.EncryptItem(item, key)
	require.NoError(t, err)

	// Empty optional fields produce no ciphertext at all.
	assert.Nil(t, encrypted.URL)
	assert.Nil(t, encrypted.Notes)

	decrypted, err := codec.DecryptItem(encrypted, key)
	require.NoError(t, err)
	assert.Empty(t, decrypted.URL)
	assert.Empty(t, decrypted.Notes)
}

func TestVaultCodec_MandatoryFieldsEncryptedEvenWhenEmpty(t *testing.T) {
	codec := NewVaultCodec(crypto.NewKeychain(1000))
	key := testVaultKey(t)

	encrypted, err := codec.EncryptItem(models.VaultItem{}, key)
	require.NoError(t, err)

	assert.NotEmpty(t, encrypted.Title)
	assert.NotEmpty(t, encrypted.Username)
	assert.NotEmpty(t, encrypted.Password)

	decrypted, err := codec.DecryptItem(encrypted, key)
	require.NoError(t, err)
	assert.Empty(t, decrypted.Title)
	assert.Empty(t, decrypted.Password)
}

func TestVaultCodec_FreshNoncePerEncryption(t *testing.T) {
	codec := NewVaultCodec(crypto.NewKeychain(1000))
	key := testVaultKey(t)

	item := models.VaultItem{Title: "same", Username: "same", Password: "same"}

	first, err := codec.EncryptItem(item, key)
	require.NoError(t, err)
	second, err := codec.EncryptItem(item, key)
	require.NoError(t, err)

	assert.NotEqual(t, first.Title, second.Title)
	assert.NotEqual(t, first.Password, second.Password)
}

func TestVaultCodec_WrongKeyFailsWholeRecord(t *testing.T) {
	kc := crypto.NewKeychain(1000)
	codec := NewVaultCodec(kc)
	key := testVaultKey(t)

	encrypted, err := codec.EncryptItem(models.VaultItem{
		Title:    "GitHub",
		Username: "alice",
		Password: "p@ssw0rd!",
	}, key)
	require.NoError(t, err)

	wrongKey, err := kc.DeriveKey(models.MasterCredential{
		Email:          "alice@example.com",
		MasterPassword: "wrong-horse",
	})
	require.NoError(t, err)

	_, err = codec.DecryptItem(encrypted, wrongKey)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestVaultCodec_CorruptOptionalFieldFailsWholeRecord(t *testing.T) {
	codec := NewVaultCodec(crypto.NewKeychain(1000))
	key := testVaultKey(t)

	encrypted, err := codec.EncryptItem(models.VaultItem{
		Title:    "GitHub",
		Username: "alice",
		Password: "p@ssw0rd!",
		Notes:    "remember to rotate",
	}, key)
	require.NoError(t, err)

	corrupt := models.CipherText("not-even-base64!!!")
	encrypted.Notes = &corrupt

	_, err = codec.DecryptItem(encrypted, key)
	require.Error(t, err)
}

func TestVaultCodec_EncryptFieldError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeychain := mock.NewMockKeychain(ctrl)
	codec := NewVaultCodec(mockKeychain)
	key := []byte("key")

	mockKeychain.EXPECT().EncryptField("GitHub", key).Return(models.CipherText(""), errors.New("nonce source failed"))

	_, err := codec.EncryptItem(models.VaultItem{Title: "GitHub"}, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encrypt title")
}

func TestVaultCodec_DecryptFieldError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeychain := mock.NewMockKeychain(ctrl)
	codec := NewVaultCodec(mockKeychain)
	key := []byte("key")

	mockKeychain.EXPECT().DecryptField(models.CipherText("blob-title"), key).Return("GitHub", nil)
	mockKeychain.EXPECT().DecryptField(models.CipherText("blob-username"), key).Return("", errors.New("auth tag mismatch"))

	_, err := codec.DecryptItem(models.EncryptedVaultItem{
		Title:    "blob-title",
		Username: "blob-username",
		Password: "blob-password",
	}, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decrypt username")
}
