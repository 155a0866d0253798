// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/mock"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-secure-vault",
		TokenDuration: time.Hour,
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)

	return NewAuthService(mockUsers, testAppConfig(), logger.Nop()), mockUsers
}

// ── RegisterUser ────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			// Repository must receive a bcrypt hash and no plaintext.
			assert.Empty(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")))
			u.UserID = 42
			return u, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, models.User{Email: "alice@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, "alice@example.com", registered.Email)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(ctx, models.User{Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Email: "alice@example.com", Password: "secret"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 42, Email: "alice@example.com", PasswordHash: string(hash)}
	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)

	found, err := svc.Login(ctx, models.User{Email: "alice@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 42, Email: "alice@example.com", PasswordHash: string(hash)}
	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, nil)

	_, err = svc.Login(ctx, models.User{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	// Unknown email is indistinguishable from a wrong password.
	_, err := svc.Login(ctx, models.User{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Login(ctx, models.User{Email: "alice@example.com", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "definitely-not-a-jwt")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)
	issuing := NewAuthService(mockUsers, testAppConfig(), logger.Nop())

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "a-different-sign-key"
	verifying := NewAuthService(mockUsers, otherCfg, logger.Nop())

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock.NewMockUserRepository(ctrl)

	otherCfg := testAppConfig()
	otherCfg.TokenIssuer = "some-other-service"
	issuing := NewAuthService(mockUsers, otherCfg, logger.Nop())
	verifying := NewAuthService(mockUsers, testAppConfig(), logger.Nop())

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
