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

func (h *Handler) listTravels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	verr := validators.NewValidationError()
	page, _ := validators.ParsePage(query, verr)
	if verr.HasErrors() {
		writeError(w, r, verr)
		return
	}

	travels, err := h.services.TravelService.ListPublicTravels(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewPaginatedResponse(travels, models.NewTravelResource, r.URL.Path, query), http.StatusOK)
}

func (h *Handler) createTravel(w http.ResponseWriter, r *http.Request) {
	var req models.TravelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	travel, err := h.services.TravelService.CreateTravel(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.TravelResource]{Data: models.NewTravelResource(travel)}, http.StatusCreated)
}

func (h *Handler) updateTravel(w http.ResponseWriter, r *http.Request) {
	var req models.TravelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	travel, err := h.services.TravelService.UpdateTravel(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse[models.TravelResource]{Data: models.NewTravelResource(travel)}, http.StatusOK)
}
