// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/internal/utils"
	"github.com/nstepura/go-secure-vault/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.EncryptedVaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	// The owner always comes from the token, never from the body.
	item.UserID = userID

	created, err := h.services.VaultService.CreateItem(r.Context(), item)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, "invalid vault item provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.createItem").Msg("error creating vault item")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID := chi.URLParam(r, "id")
	item, err := h.services.VaultService.GetItem(r.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid vault item id", http.StatusBadRequest)
		case errors.Is(err, store.ErrItemNotFound):
			http.Error(w, "vault item was not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.getItem").Str("item_id", itemID).Msg("error getting vault item")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.VaultService.ListItems(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing vault items")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var item models.EncryptedVaultItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.updateItem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	item.ID = chi.URLParam(r, "id")
	item.UserID = userID

	updated, err := h.services.VaultService.UpdateItem(r.Context(), item)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid vault item provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrItemNotFound):
			http.Error(w, "vault item was not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.updateItem").Str("item_id", item.ID).Msg("error updating vault item")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	itemID := chi.URLParam(r, "id")
	if err := h.services.VaultService.DeleteItem(r.Context(), itemID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid vault item id", http.StatusBadRequest)
		case errors.Is(err, store.ErrItemNotFound):
			http.Error(w, "vault item was not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.deleteItem").Str("item_id", itemID).Msg("error deleting vault item")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
