package crypto

import "github.com/nstepura/go-secure-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// Keychain is responsible for all client-side cryptography of the
// zero-knowledge scheme. It knows nothing about the network, the database
// or users; its only job is deriving the vault key and encrypting single
// field values with it.
//
// Scheme:
//
//	Key        = DeriveKey(masterPassword, email)     (once per login)
//	CipherText = EncryptField(plaintext, Key)         (per field, per save)
//	Plaintext  = DecryptField(ciphertext, Key)        (per field, per load)
type Keychain interface {
	// DeriveKey derives the 256-bit vault key from the master credential
	// via PBKDF2-SHA256. The email address is the salt: it binds the key
	// to the account so two users with the same password get different
	// keys, and it lets the client re-derive the key with zero
	// server-side state. The email is public, so this is a deliberately
	// weak salt — a known, documented trade-off of the scheme, not one
	// to silently "fix" (a random salt would need durable storage and
	// would change the zero-knowledge properties).
	//
	// Deterministic: the same credential always yields the same key.
	// Returns ErrEmptyMasterPassword or ErrEmptySalt on blank inputs.
	DeriveKey(cred models.MasterCredential) ([]byte, error)

	// EncryptField encrypts a single text field with AES-256-GCM under
	// the given key and returns base64(nonce ‖ ciphertext). A fresh
	// random nonce is drawn per call, so encrypting the same plaintext
	// twice yields different ciphertexts.
	EncryptField(plaintext string, key []byte) (models.CipherText, error)

	// DecryptField reverses EncryptField. The GCM authentication tag
	// makes a wrong key or corrupted blob a detectable failure
	// (ErrDecryptionFailed), never silently wrong plaintext.
	DecryptField(ciphertext models.CipherText, key []byte) (string, error)
}
