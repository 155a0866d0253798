// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"github.com/nstepura/go-secure-vault/internal/adapter"
	"github.com/nstepura/go-secure-vault/internal/crypto"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/store"
)

// ClientServices bundles the client-side service layer. All services
// share one Session, so Logout invalidates every vault operation at
// once.
type ClientServices struct {
	Session      Session
	AuthService  ClientAuthService
	VaultService ClientVaultService
	Generator    PasswordGenerator
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cache store.LocalVaultCache, keychain crypto.Keychain, log *logger.Logger) *ClientServices {
	session := NewSession()
	codec := NewVaultCodec(keychain)

	return &ClientServices{
		Session:      session,
		AuthService:  NewClientAuthService(serverAdapter, keychain, session),
		VaultService: NewClientVaultService(serverAdapter, cache, codec, session, log),
		Generator:    NewPasswordGenerator(),
	}
}
