// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

type TravelValidationService struct {
	inner     TravelService
	validator validators.Validator
}

func NewTravelValidationService(validator validators.Validator) TravelServiceWrapper {
	return &TravelValidationService{validator: validator}
}

func (v *TravelValidationService) ListPublicTravels(ctx context.Context, page int) (models.Page[models.Travel], error) {
	return v.inner.ListPublicTravels(ctx, page)
}

func (v *TravelValidationService) CreateTravel(ctx context.Context, req models.TravelRequest) (models.Travel, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Travel{}, fmt.Errorf("error during travel validation before saving: %w", err)
	}

	return v.inner.CreateTravel(ctx, req)
}

func (v *TravelValidationService) UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.Travel, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Travel{}, fmt.Errorf("error during travel validation before updating: %w", err)
	}

	return v.inner.UpdateTravel(ctx, travelID, req)
}

func (v *TravelValidationService) Wrap(inner TravelService) TravelService {
	v.inner = inner
	return v
}
