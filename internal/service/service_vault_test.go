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
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/models"
)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockVaultRepository) {
	t.Helper()

	mockRepo := mock.NewMockVaultRepository(ctrl)

	return NewVaultService(mockRepo, logger.Nop()), mockRepo
}

func testEncryptedItem() models.EncryptedVaultItem {
	return models.EncryptedVaultItem{
		ID:       "0c9adf44-2c2f-4f4e-b0fb-6bb3e0f5a111",
		UserID:   42,
		Title:    "enc-title",
		Username: "enc-username",
		Password: "enc-password",
	}
}

// ── CreateItem ──────────────────────────────────────────────────────────────

func TestVaultService_CreateItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	item := testEncryptedItem()

	mockRepo.EXPECT().CreateItem(ctx, item).Return(item, nil)

	created, err := svc.CreateItem(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, item, created)
}

func TestVaultService_CreateItem_AssignsIDWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	item := testEncryptedItem()
	item.ID = ""

	mockRepo.EXPECT().CreateItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, stored models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
			_, err := uuid.Parse(stored.ID)
			assert.NoError(t, err)
			return stored, nil
		},
	)

	created, err := svc.CreateItem(ctx, item)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestVaultService_CreateItem_MissingMandatoryField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	for _, item := range []models.EncryptedVaultItem{
		{Username: "u", Password: "p"},
		{Title: "t", Password: "p"},
		{Title: "t", Username: "u"},
	} {
		_, err := svc.CreateItem(ctx, item)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestVaultService_CreateItem_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateItem(ctx, gomock.Any()).Return(models.EncryptedVaultItem{}, errors.New("deadlock detected"))

	_, err := svc.CreateItem(ctx, testEncryptedItem())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault item creation failed")
}

// ── GetItem ─────────────────────────────────────────────────────────────────

func TestVaultService_GetItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	item := testEncryptedItem()

	mockRepo.EXPECT().GetItem(ctx, item.ID, int64(42)).Return(item, nil)

	got, err := svc.GetItem(ctx, item.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestVaultService_GetItem_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.GetItem(context.Background(), "", 42)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultService_GetItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "missing-id", int64(42)).Return(models.EncryptedVaultItem{}, store.ErrItemNotFound)

	_, err := svc.GetItem(ctx, "missing-id", 42)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}

// ── ListItems ───────────────────────────────────────────────────────────────

func TestVaultService_ListItems_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	items := []models.EncryptedVaultItem{testEncryptedItem()}
	mockRepo.EXPECT().ListItems(ctx, int64(42)).Return(items, nil)

	got, err := svc.ListItems(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestVaultService_ListItems_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListItems(ctx, int64(42)).Return([]models.EncryptedVaultItem{}, nil)

	got, err := svc.ListItems(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── UpdateItem ──────────────────────────────────────────────────────────────

func TestVaultService_UpdateItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	item := testEncryptedItem()

	mockRepo.EXPECT().UpdateItem(ctx, item).Return(item, nil)

	updated, err := svc.UpdateItem(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, item, updated)
}

func TestVaultService_UpdateItem_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)

	item := testEncryptedItem()
	item.ID = ""

	_, err := svc.UpdateItem(context.Background(), item)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultService_UpdateItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()
	item := testEncryptedItem()

	mockRepo.EXPECT().UpdateItem(ctx, item).Return(models.EncryptedVaultItem{}, store.ErrItemNotFound)

	_, err := svc.UpdateItem(ctx, item)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}

// ── DeleteItem ──────────────────────────────────────────────────────────────

func TestVaultService_DeleteItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteItem(ctx, "id-1", int64(42)).Return(nil)

	require.NoError(t, svc.DeleteItem(ctx, "id-1", 42))
}

func TestVaultService_DeleteItem_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVaultSvc(t, ctrl)

	err := svc.DeleteItem(context.Background(), "", 42)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultService_DeleteItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteItem(ctx, "missing-id", int64(42)).Return(store.ErrItemNotFound)

	err := svc.DeleteItem(ctx, "missing-id", 42)
	require.ErrorIs(t, err, store.ErrItemNotFound)
}
