// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotAuthenticated is returned when a vault operation is attempted
	// before login or after logout.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	ErrEmptyPolicy = errors.New("password policy enables no character classes")
	ErrBadLength   = errors.New("password length must be positive")
)
