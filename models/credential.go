package models

// MasterCredential is the ephemeral (email, master password) pair that
// exists only during the login exchange. It is consumed by key derivation
// and then discarded: never persisted, never transmitted beyond the
// authentication call, never logged.
type MasterCredential struct {
	Email          string
	MasterPassword string
}
