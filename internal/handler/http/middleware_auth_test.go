// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/internal/utils"
	"github.com/nstepura/go-secure-vault/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, http.MethodGet, "/api/vault", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, http.MethodGet, "/api/vault", "", map[string]string{
		"Authorization": "just-a-token-without-scheme",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, http.MethodGet, "/api/vault", "", map[string]string{
		"Authorization": "Bearer ",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredOrInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "expired-jwt").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := doRequest(h, http.MethodGet, "/api/vault", "", map[string]string{
		"Authorization": "Bearer expired-jwt",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InjectsUserIDIntoContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().ParseToken(gomock.Any(), "valid-jwt").
		Return(models.Token{UserID: 42}, nil)

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.Header.Set("Authorization", "Bearer valid-jwt")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, int64(42), gotUserID)
}

func Test_getTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "no scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
