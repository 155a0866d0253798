// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/utils"
	"github.com/nstepura/go-secure-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// ClearToken implements [ServerAdapter].
func (h *httpServerAdapter) ClearToken() {
	h.token = ""
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&createdUser).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return createdUser, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// CreateItem implements [ServerAdapter]. It POSTs the encrypted record
// to POST /api/vault and returns the stored record with server-assigned
// timestamps. Requires a valid bearer token.
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	var created models.EncryptedVaultItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post("/api/vault")
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedVaultItem{}, err
	}

	return created, nil
}

// GetItem implements [ServerAdapter]. It GETs /api/vault/{id} and
// decodes the encrypted record. Requires a valid bearer token.
func (h *httpServerAdapter) GetItem(ctx context.Context, itemID string) (models.EncryptedVaultItem, error) {
	var item models.EncryptedVaultItem

	resp, err := h.authedRequest(ctx).
		SetResult(&item).
		Get("/api/vault/" + url.PathEscape(itemID))
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedVaultItem{}, err
	}

	return item, nil
}

// ListItems implements [ServerAdapter]. It GETs /api/vault and decodes
// the encrypted record collection. Requires a valid bearer token.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.EncryptedVaultItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.EncryptedVaultItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return items, nil
}

// UpdateItem implements [ServerAdapter]. It PUTs the encrypted record to
// PUT /api/vault/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, item models.EncryptedVaultItem) (models.EncryptedVaultItem, error) {
	var updated models.EncryptedVaultItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&updated).
		Put("/api/vault/" + url.PathEscape(item.ID))
	if err != nil {
		return models.EncryptedVaultItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedVaultItem{}, err
	}

	return updated, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /api/vault/{id}.
// Requires a valid bearer token.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/vault/" + url.PathEscape(itemID))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}
