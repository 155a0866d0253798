// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Stepura

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// vault routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/vault", h.createItem)
		r.Get("/api/vault", h.listItems)
		r.Get("/api/vault/{id}", h.getItem)
		r.Put("/api/vault/{id}", h.updateItem)
		r.Delete("/api/vault/{id}", h.deleteItem)
	})

	return router
}
