// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/adapter"
	"github.com/nstepura/go-secure-vault/internal/crypto"
	"github.com/nstepura/go-secure-vault/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.Keychain
	session  Session
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keychain crypto.Keychain, session Session) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, keychain: keychain, session: session}
}

// Register creates the account on the server. The master password is
// sent once over TLS for bcrypt hashing; no vault key is derived here
// because registration does not open a session.
func (a *clientAuthService) Register(ctx context.Context, cred models.MasterCredential) error {
	if cred.Email == "" || cred.MasterPassword == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.adapter.Register(ctx, models.User{Email: cred.Email, Password: cred.MasterPassword})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return nil
}

// Login authenticates against the server and, on success, derives the
// vault key from the credential and parks it in the session. The key
// never leaves the process; the server only ever saw the password for
// bcrypt comparison.
func (a *clientAuthService) Login(ctx context.Context, cred models.MasterCredential) error {
	if cred.Email == "" || cred.MasterPassword == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.adapter.Login(ctx, models.User{Email: cred.Email, Password: cred.MasterPassword})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	key, err := a.keychain.DeriveKey(cred)
	if err != nil {
		return fmt.Errorf("derive vault key: %w", err)
	}

	a.session.Set(key)

	return nil
}

// Logout wipes the session key and the bearer token. Encrypted records
// still cached locally stay unreadable without a fresh login.
func (a *clientAuthService) Logout() {
	a.session.Clear()
	a.adapter.ClearToken()
}
