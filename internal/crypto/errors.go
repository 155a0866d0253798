package crypto

import "errors"

var (
	// ErrEmptyMasterPassword is returned by DeriveKey when the master
	// password is blank. Callers should reject such input before
	// invoking key derivation.
	ErrEmptyMasterPassword = errors.New("master password must not be empty")

	// ErrEmptySalt is returned by DeriveKey when the email acting as
	// the derivation salt is blank.
	ErrEmptySalt = errors.New("email salt must not be empty")

	// ErrInvalidKeyLength is returned when a key of the wrong size is
	// passed to the field cipher.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrCiphertextTooShort is returned when a decoded blob is shorter
	// than the GCM nonce and cannot possibly be valid.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrMalformedCiphertext is returned when the ciphertext is not
	// valid base64.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecryptionFailed is returned when the GCM authentication tag
	// does not verify — almost always a wrong key (wrong master
	// password) or a corrupted record.
	ErrDecryptionFailed = errors.New("decryption failed")
)
