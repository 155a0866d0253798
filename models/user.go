package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique account identifier used during authentication.
	// It also acts as the key-derivation salt on the client.
	Email string `json:"email"`

	// Password carries the account password during the register/login
	// exchange. On the client this is also the master password the vault
	// key is derived from. It MUST never be persisted or logged; the
	// server stores only the bcrypt hash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored by the server.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
