// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/nstepura/go-secure-vault/models"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used when the
	// config does not override it. The reference web client shipped
	// with 1000; the count is a tunable constant and raising it does
	// not change the derivation contract.
	DefaultIterations = 100_000

	// keyLen is the derived key size: 32 bytes for AES-256.
	keyLen = 32
)

// keychain is the private implementation of [Keychain].
type keychain struct {
	// iterations is the PBKDF2 work factor. Stored in the struct so it
	// can be adjusted per deployment target.
	iterations int
}

// NewKeychain constructs a [Keychain] with the given PBKDF2 iteration
// count. Zero or negative values fall back to [DefaultIterations].
func NewKeychain(iterations int) Keychain {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &keychain{iterations: iterations}
}

// DeriveKey implements [Keychain]. PBKDF2-SHA256 over the master
// password with the account email as salt, producing 32 bytes of key
// material. Pure and deterministic: no I/O, no side effects, safe to
// call repeatedly and concurrently.
func (k *keychain) DeriveKey(cred models.MasterCredential) ([]byte, error) {
	if cred.MasterPassword == "" {
		return nil, ErrEmptyMasterPassword
	}
	if cred.Email == "" {
		return nil, ErrEmptySalt
	}

	key := pbkdf2.Key([]byte(cred.MasterPassword), []byte(cred.Email), k.iterations, keyLen, sha256.New)
	return key, nil
}

// EncryptField implements [Keychain]. It encrypts value with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that the decryption side can locate it: blob = nonce ‖ ciphertext.
func (k *keychain) EncryptField(plaintext string, key []byte) (models.CipherText, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ct...)
	return models.CipherText(base64.StdEncoding.EncodeToString(blob)), nil
}

// DecryptField implements [Keychain]. It base64-decodes the blob, splits
// out the nonce, decrypts with AES-256-GCM and verifies the auth tag.
// A tag mismatch almost always means the user entered the wrong master
// password, producing a wrong key.
func (k *keychain) DecryptField(ciphertext models.CipherText, key []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(string(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrCiphertextTooShort
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(pt), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
