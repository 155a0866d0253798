// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/mock"
	"github.com/nstepura/go-secure-vault/models"
)

type clientVaultMocks struct {
	adapter *mock.MockServerAdapter
	cache   *mock.MockLocalVaultCache
	codec   *mock.MockVaultCodec
	session Session
}

func newTestClientVaultSvc(t *testing.T, ctrl *gomock.Controller) (ClientVaultService, clientVaultMocks) {
	t.Helper()

	m := clientVaultMocks{
		adapter: mock.NewMockServerAdapter(ctrl),
		cache:   mock.NewMockLocalVaultCache(ctrl),
		codec:   mock.NewMockVaultCodec(ctrl),
		session: NewSession(),
	}
	m.session.Set([]byte("vault-key"))

	svc := NewClientVaultService(m.adapter, m.cache, m.codec, m.session, logger.Nop())

	return svc, m
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestClientVaultService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()
	key := []byte("vault-key")

	plain := models.VaultItem{Title: "GitHub", Username: "alice", Password: "p@ss"}
	encrypted := models.EncryptedVaultItem{Title: "enc-title", Username: "enc-user", Password: "enc-pass"}
	created := encrypted
	created.ID = "f3b7c2de-1111-2222-3333-444455556666"
	wantItem := models.VaultItem{ID: created.ID, Title: "GitHub", Username: "alice", Password: "p@ss"}

	gomock.InOrder(
		m.codec.EXPECT().EncryptItem(gomock.Any(), key).DoAndReturn(
			func(item models.VaultItem, _ []byte) (models.EncryptedVaultItem, error) {
				// Client assigns the UUID before upload.
				_, err := uuid.Parse(item.ID)
				assert.NoError(t, err)
				assert.Equal(t, plain.Title, item.Title)
				enc := encrypted
				enc.ID = item.ID
				return enc, nil
			},
		),
		m.adapter.EXPECT().CreateItem(ctx, gomock.Any()).Return(created, nil),
		m.cache.EXPECT().SaveItems(ctx, created).Return(nil),
		m.codec.EXPECT().DecryptItem(created, key).Return(wantItem, nil),
	)

	got, err := svc.Create(ctx, plain)
	require.NoError(t, err)
	assert.Equal(t, wantItem, got)
}

func TestClientVaultService_Create_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	m.session.Clear()

	_, err := svc.Create(context.Background(), models.VaultItem{Title: "x"})
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientVaultService_Create_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	m.codec.EXPECT().EncryptItem(gomock.Any(), gomock.Any()).Return(models.EncryptedVaultItem{Title: "enc"}, nil)
	m.adapter.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.EncryptedVaultItem{}, errors.New("503 bad gateway"))

	_, err := svc.Create(ctx, models.VaultItem{Title: "GitHub"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create item on server")
}

func TestClientVaultService_Create_CacheErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	created := models.EncryptedVaultItem{ID: "id-1", Title: "enc"}
	wantItem := models.VaultItem{ID: "id-1", Title: "GitHub"}

	m.codec.EXPECT().EncryptItem(gomock.Any(), gomock.Any()).Return(models.EncryptedVaultItem{Title: "enc"}, nil)
	m.adapter.EXPECT().CreateItem(ctx, gomock.Any()).Return(created, nil)
	m.cache.EXPECT().SaveItems(ctx, created).Return(errors.New("disk full"))
	m.codec.EXPECT().DecryptItem(created, gomock.Any()).Return(wantItem, nil)

	got, err := svc.Create(ctx, models.VaultItem{Title: "GitHub"})
	require.NoError(t, err)
	assert.Equal(t, wantItem, got)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestClientVaultService_Get_FromServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	encrypted := models.EncryptedVaultItem{ID: "id-1", Title: "enc"}
	wantItem := models.VaultItem{ID: "id-1", Title: "GitHub"}

	m.adapter.EXPECT().GetItem(ctx, "id-1").Return(encrypted, nil)
	m.codec.EXPECT().DecryptItem(encrypted, gomock.Any()).Return(wantItem, nil)

	got, err := svc.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, wantItem, got)
}

func TestClientVaultService_Get_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	encrypted := models.EncryptedVaultItem{ID: "id-1", Title: "enc"}
	wantItem := models.VaultItem{ID: "id-1", Title: "GitHub"}

	m.adapter.EXPECT().GetItem(ctx, "id-1").Return(models.EncryptedVaultItem{}, errors.New("connection refused"))
	m.cache.EXPECT().GetItem(ctx, "id-1").Return(encrypted, nil)
	m.codec.EXPECT().DecryptItem(encrypted, gomock.Any()).Return(wantItem, nil)

	got, err := svc.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, wantItem, got)
}

func TestClientVaultService_Get_ServerAndCacheFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().GetItem(ctx, "id-1").Return(models.EncryptedVaultItem{}, errors.New("connection refused"))
	m.cache.EXPECT().GetItem(ctx, "id-1").Return(models.EncryptedVaultItem{}, errors.New("no such item"))

	_, err := svc.Get(ctx, "id-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get item from local cache")
}

// ── List ────────────────────────────────────────────────────────────────────

func TestClientVaultService_List_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	encrypted := []models.EncryptedVaultItem{
		{ID: "id-1", Title: "enc-1"},
		{ID: "id-2", Title: "enc-2"},
	}
	want := []models.VaultItem{
		{ID: "id-1", Title: "GitHub"},
		{ID: "id-2", Title: "GitLab"},
	}

	m.adapter.EXPECT().ListItems(ctx).Return(encrypted, nil)
	m.cache.EXPECT().ReplaceAll(ctx, encrypted).Return(nil)
	m.codec.EXPECT().DecryptItem(encrypted[0], gomock.Any()).Return(want[0], nil)
	m.codec.EXPECT().DecryptItem(encrypted[1], gomock.Any()).Return(want[1], nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientVaultService_List_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	encrypted := []models.EncryptedVaultItem{{ID: "id-1", Title: "enc-1"}}
	want := []models.VaultItem{{ID: "id-1", Title: "GitHub"}}

	m.adapter.EXPECT().ListItems(ctx).Return(nil, errors.New("connection refused"))
	m.cache.EXPECT().ListItems(ctx).Return(encrypted, nil)
	m.codec.EXPECT().DecryptItem(encrypted[0], gomock.Any()).Return(want[0], nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientVaultService_List_DecryptErrorFailsListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	encrypted := []models.EncryptedVaultItem{{ID: "id-1", Title: "enc-1"}}

	m.adapter.EXPECT().ListItems(ctx).Return(encrypted, nil)
	m.cache.EXPECT().ReplaceAll(ctx, encrypted).Return(nil)
	m.codec.EXPECT().DecryptItem(encrypted[0], gomock.Any()).Return(models.VaultItem{}, errors.New("auth tag mismatch"))

	_, err := svc.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id-1")
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestClientVaultService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	plain := models.VaultItem{ID: "id-1", Title: "GitHub", Username: "alice", Password: "rotated"}
	encrypted := models.EncryptedVaultItem{ID: "id-1", Title: "enc"}
	updated := models.EncryptedVaultItem{ID: "id-1", Title: "enc-updated"}

	gomock.InOrder(
		m.codec.EXPECT().EncryptItem(plain, gomock.Any()).Return(encrypted, nil),
		m.adapter.EXPECT().UpdateItem(ctx, encrypted).Return(updated, nil),
		m.cache.EXPECT().SaveItems(ctx, updated).Return(nil),
		m.codec.EXPECT().DecryptItem(updated, gomock.Any()).Return(plain, nil),
	)

	got, err := svc.Update(ctx, plain)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestClientVaultService_Update_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientVaultSvc(t, ctrl)

	_, err := svc.Update(context.Background(), models.VaultItem{Title: "no id"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestClientVaultService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().DeleteItem(ctx, "id-1").Return(nil)
	m.cache.EXPECT().DeleteItem(ctx, "id-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "id-1"))
}

func TestClientVaultService_Delete_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	ctx := context.Background()

	m.adapter.EXPECT().DeleteItem(ctx, "id-1").Return(errors.New("404 not found"))

	err := svc.Delete(ctx, "id-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete item on server")
}

func TestClientVaultService_Delete_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestClientVaultSvc(t, ctrl)
	m.session.Clear()

	err := svc.Delete(context.Background(), "id-1")
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
