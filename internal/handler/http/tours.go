// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

func (h *Handler) listTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q, err := validators.ParseTourQuery(query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tours, err := h.services.TourService.ListTours(r.Context(), chi.URLParam(r, "slug"), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewPaginatedResponse(tours, models.NewTourResource, r.URL.Path, query), http.StatusOK)
}

func (h *Handler) createTour(w http.ResponseWriter, r *http.Request) {
	var req models.TourRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tour, err := h.services.TourService.CreateTour(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.TourResource]{Data: models.NewTourResource(tour)}, http.StatusCreated)
}
