// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-travel-api/internal/config"
	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

type Services struct {
	AuthService    AuthService
	TravelService  TravelService
	TourService    TourService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. Request bodies are
// validated by the wrappers before the services see them.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, storages.TokenRepository, cfg, logger)),
		TravelService: NewTravelValidationService(validator).
			Wrap(NewTravelService(storages.TravelRepository, logger)),
		TourService: NewTourValidationService(validator).
			Wrap(NewTourService(storages.TravelRepository, storages.TourRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
