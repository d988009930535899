// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

type TourValidationService struct {
	inner     TourService
	validator validators.Validator
}

func NewTourValidationService(validator validators.Validator) TourServiceWrapper {
	return &TourValidationService{validator: validator}
}

func (v *TourValidationService) ListTours(ctx context.Context, travelSlug string, q models.TourQuery) (models.Page[models.Tour], error) {
	return v.inner.ListTours(ctx, travelSlug, q)
}

func (v *TourValidationService) CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.Tour, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Tour{}, fmt.Errorf("error during tour validation before saving: %w", err)
	}

	return v.inner.CreateTour(ctx, travelID, req)
}

func (v *TourValidationService) Wrap(inner TourService) TourService {
	v.inner = inner
	return v
}
