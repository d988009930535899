// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/models"
)

const (
	// fallbackSlug is used when a name has no ASCII letters or digits.
	fallbackSlug = "travel"

	// maxSlugAttempts bounds the inserts retried after a concurrent writer
	// claimed the computed slug first.
	maxSlugAttempts = 5
)

type travelService struct {
	travelRepository store.TravelRepository

	idGenerator utils.IDGenerator
	sanitizer   *bluemonday.Policy

	logger *logger.Logger
}

func NewTravelService(travelRepository store.TravelRepository, logger *logger.Logger) TravelService {
	return &travelService{
		travelRepository: travelRepository,
		idGenerator:      utils.NewUUIDGenerator(),
		sanitizer:        bluemonday.StrictPolicy(),
		logger:           logger,
	}
}

func (s *travelService) ListPublicTravels(ctx context.Context, page int) (models.Page[models.Travel], error) {
	if page < 1 {
		page = 1
	}

	travels, total, err := s.travelRepository.ListPublicTravels(ctx, page, models.PageSize)
	if err != nil {
		return models.Page[models.Travel]{}, fmt.Errorf("listing public travels failed: %w", err)
	}

	return models.NewPage(travels, total, page, models.PageSize), nil
}

// CreateTravel stores a new travel with a slug derived from its name. When
// the slug is taken the first free "-N" suffix, starting at 2, is used.
func (s *travelService) CreateTravel(ctx context.Context, req models.TravelRequest) (models.Travel, error) {
	log := logger.FromContext(ctx)

	travel := models.Travel{
		ID:           s.idGenerator.Generate(),
		Name:         req.Name,
		Description:  s.sanitize(req.Description),
		IsPublic:     req.IsPublic.Bool(),
		NumberOfDays: *req.NumberOfDays,
	}

	base := utils.Slugify(req.Name)
	if base == "" {
		base = fallbackSlug
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.freeSlug(ctx, base)
		if err != nil {
			return models.Travel{}, err
		}
		travel.Slug = slug

		created, err := s.travelRepository.CreateTravel(ctx, travel)
		if errors.Is(err, store.ErrSlugAlreadyExists) {
			log.Debug().Str("func", "*travelService.CreateTravel").Str("slug", slug).Msg("slug claimed concurrently, retrying")
			continue
		}
		if err != nil {
			return models.Travel{}, fmt.Errorf("travel creation failed: %w", err)
		}
		return created, nil
	}

	log.Error().Str("func", "*travelService.CreateTravel").Str("slug", base).Msg("slug attempts exhausted")
	return models.Travel{}, ErrSlugGenerationFailed
}

// UpdateTravel overwrites the editable fields. The slug stays as generated.
func (s *travelService) UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.Travel, error) {
	updated, err := s.travelRepository.UpdateTravel(ctx, models.Travel{
		ID:           travelID,
		Name:         req.Name,
		Description:  s.sanitize(req.Description),
		IsPublic:     req.IsPublic.Bool(),
		NumberOfDays: *req.NumberOfDays,
	})
	if err != nil {
		return models.Travel{}, fmt.Errorf("travel update failed: %w", err)
	}
	return updated, nil
}

func (s *travelService) freeSlug(ctx context.Context, base string) (string, error) {
	taken, err := s.travelRepository.SlugsWithPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("slug lookup failed: %w", err)
	}
	return nextFreeSlug(base, taken), nil
}

// nextFreeSlug returns base when unused, otherwise base-N for the smallest
// N >= 2 not in taken.
func nextFreeSlug(base string, taken []string) string {
	used := make(map[string]bool, len(taken))
	for _, slug := range taken {
		used[slug] = true
	}
	if !used[base] {
		return base
	}

	var b strings.Builder
	for n := 2; ; n++ {
		b.Reset()
		b.WriteString(base)
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(n))
		if !used[b.String()] {
			return b.String()
		}
	}
}

// sanitize drops every tag from s. Entities escaped by the policy are
// decoded back since descriptions are served as JSON, not HTML.
func (s *travelService) sanitize(description string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(description)))
}
