// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// must be set before sub-routers are mounted so they inherit it
	router.MethodNotAllowed(h.checkHTTPMethod)
	router.NotFound(h.notFound)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireCapability)
		h.userRoutes(r)
	})

	if h.multiTenant {
		router.Route("/api/network/users", func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.requireCapability)
			r.Use(h.requireNetworkAdmin)
			h.userRoutes(r)
		})
	}

	return router
}

func (h *Handler) userRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Post("/rename", h.renameUser)
	r.Get("/{userID}", h.getUser)
	r.Get("/{userID}/rename-allowed", h.renameAllowed)
}
