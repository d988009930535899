// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/models"
)

// tourRepository is the SQL implementation of [TourRepository] over the
// "tours" table.
type tourRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTourRepository(db *DB, logger *logger.Logger) TourRepository {
	logger.Debug().Msg("creating tour repository")
	return &tourRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTour inserts tour. A TravelID with no travel behind it yields
// [ErrTravelNotFound].
func (r *tourRepository) CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error) {
	log := logger.FromContext(ctx)

	if tour.CreatedAt.IsZero() {
		tour.CreatedAt = now()
	}
	if tour.UpdatedAt.IsZero() {
		tour.UpdatedAt = tour.CreatedAt
	}
	tour.Price = tour.Price.Round(models.PriceScale)

	query, args, err := buildInsertTourQuery(r.db.builder, tour)
	if err != nil {
		return models.Tour{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.violation(err) == ForeignKeyViolation {
			return models.Tour{}, ErrTravelNotFound
		}
		log.Err(err).Str("func", "*tourRepository.CreateTour").Str("travel_id", tour.TravelID).Msg("error inserting tour")
		return models.Tour{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*tourRepository.CreateTour").Str("tour_id", tour.ID).Msg("tour created")
	return tour, nil
}

// ListTours returns the page of travelID's tours selected by q, together
// with the number of tours matching q's filters.
func (r *tourRepository) ListTours(ctx context.Context, travelID string, q models.TourQuery) ([]models.Tour, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountToursQuery(r.db.builder, travelID, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTours").Msg("error counting tours")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListToursQuery(r.db.builder, travelID, q)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tourRepository.ListTours").Msg("error listing tours")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tours := make([]models.Tour, 0, models.PageSize)
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tours = append(tours, tour)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tours, total, nil
}
