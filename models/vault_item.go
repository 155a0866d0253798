package models

import "time"

// VaultItem is the plaintext representation of a single vault record.
// It exists only in client memory while a session is active; it is never
// stored or transmitted in this form.
//
// URL and Notes are optional: an empty string means the field is absent.
type VaultItem struct {
	// ID is the client-assigned UUID of the record. Empty before the
	// first save.
	ID string `json:"id,omitempty"`

	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`

	// CreatedAt and UpdatedAt are assigned by the persistent store and
	// pass through encryption untouched.
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// EncryptedVaultItem mirrors VaultItem with every sensitive field replaced
// by its CipherText. This is the only representation that crosses the
// boundary to the persistent store. ID and timestamps are not secret and
// stay in the clear: the store needs ID to address the record and
// CreatedAt to order listings.
type EncryptedVaultItem struct {
	ID string `json:"id,omitempty"`

	// UserID is the owner of the record. Set by the server from the
	// authenticated session, never trusted from the client body.
	UserID int64 `json:"-"`

	Title    CipherText  `json:"title"`
	Username CipherText  `json:"username"`
	Password CipherText  `json:"password"`
	URL      *CipherText `json:"url,omitempty"`
	Notes    *CipherText `json:"notes,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the EncryptedVaultItem model.
func (i *EncryptedVaultItem) TableName() string {
	return "vault_items"
}
