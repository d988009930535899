// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/models"
)

type tourService struct {
	travelRepository store.TravelRepository
	tourRepository   store.TourRepository

	idGenerator utils.IDGenerator

	logger *logger.Logger
}

func NewTourService(travelRepository store.TravelRepository, tourRepository store.TourRepository, logger *logger.Logger) TourService {
	return &tourService{
		travelRepository: travelRepository,
		tourRepository:   tourRepository,
		idGenerator:      utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// ListTours returns store.ErrTravelNotFound for an unknown slug.
func (s *tourService) ListTours(ctx context.Context, travelSlug string, q models.TourQuery) (models.Page[models.Tour], error) {
	travel, err := s.travelRepository.FindTravelBySlug(ctx, travelSlug)
	if err != nil {
		return models.Page[models.Tour]{}, fmt.Errorf("travel lookup failed: %w", err)
	}

	tours, total, err := s.tourRepository.ListTours(ctx, travel.ID, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tourService.ListTours").Str("travel_id", travel.ID).Msg("listing tours failed")
		return models.Page[models.Tour]{}, fmt.Errorf("listing tours failed: %w", err)
	}

	return models.NewPage(tours, total, q.Page, models.PageSize), nil
}

func (s *tourService) CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.Tour, error) {
	if _, err := s.travelRepository.FindTravelByID(ctx, travelID); err != nil {
		return models.Tour{}, fmt.Errorf("travel lookup failed: %w", err)
	}

	created, err := s.tourRepository.CreateTour(ctx, models.Tour{
		ID:           s.idGenerator.Generate(),
		TravelID:     travelID,
		Name:         req.Name,
		StartingDate: *req.StartingDate,
		EndingDate:   *req.EndingDate,
		Price:        req.Price.Decimal,
	})
	if err != nil {
		return models.Tour{}, fmt.Errorf("tour creation failed: %w", err)
	}
	return created, nil
}
