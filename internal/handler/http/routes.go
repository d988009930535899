// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-travel-api/models"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/login", h.login)
		r.Get("/api/v1/travels", h.listTravels)
		r.Get("/api/v1/travels/{slug}/tours", h.listTours)
	})

	// routes with bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/v1/logout", h.logout)

		r.With(h.requireRoles(models.RoleAdmin)).Post("/api/v1/admin/travels", h.createTravel)
		r.With(h.requireRoles(models.RoleAdmin, models.RoleEditor)).Put("/api/v1/admin/travels/{id}", h.updateTravel)
		r.With(h.requireRoles(models.RoleAdmin)).Post("/api/v1/admin/travels/{id}/tours", h.createTour)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
