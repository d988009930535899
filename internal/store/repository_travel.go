// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/models"
)

// travelRepository is the SQL implementation of [TravelRepository] over the
// "travels" table.
type travelRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTravelRepository(db *DB, logger *logger.Logger) TravelRepository {
	logger.Debug().Msg("creating travel repository")
	return &travelRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTravel inserts travel as given. The caller assigns ID and Slug;
// a slug already taken yields [ErrSlugAlreadyExists].
func (r *travelRepository) CreateTravel(ctx context.Context, travel models.Travel) (models.Travel, error) {
	log := logger.FromContext(ctx)

	if travel.CreatedAt.IsZero() {
		travel.CreatedAt = now()
	}
	if travel.UpdatedAt.IsZero() {
		travel.UpdatedAt = travel.CreatedAt
	}

	query, args, err := buildInsertTravelQuery(r.db.builder, travel)
	if err != nil {
		return models.Travel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.violation(err) == UniqueViolation {
			log.Debug().Str("func", "*travelRepository.CreateTravel").Str("slug", travel.Slug).Msg("slug taken")
			return models.Travel{}, ErrSlugAlreadyExists
		}
		log.Err(err).Str("func", "*travelRepository.CreateTravel").Msg("error inserting travel")
		return models.Travel{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*travelRepository.CreateTravel").Str("travel_id", travel.ID).Msg("travel created")
	return travel, nil
}

// UpdateTravel overwrites the editable fields of the travel identified by
// travel.ID and returns the stored row. Slug and CreatedAt are never changed.
func (r *travelRepository) UpdateTravel(ctx context.Context, travel models.Travel) (models.Travel, error) {
	log := logger.FromContext(ctx)

	if travel.UpdatedAt.IsZero() {
		travel.UpdatedAt = now()
	}

	query, args, err := buildUpdateTravelQuery(r.db.builder, travel)
	if err != nil {
		return models.Travel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.violation(err) == MalformedValue {
			return models.Travel{}, ErrTravelNotFound
		}
		log.Err(err).Str("func", "*travelRepository.UpdateTravel").Str("travel_id", travel.ID).Msg("error updating travel")
		return models.Travel{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Travel{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Travel{}, ErrTravelNotFound
	}

	return r.FindTravelByID(ctx, travel.ID)
}

func (r *travelRepository) FindTravelByID(ctx context.Context, travelID string) (models.Travel, error) {
	return r.findTravel(ctx, sq.Eq{"id": travelID})
}

func (r *travelRepository) FindTravelBySlug(ctx context.Context, slug string) (models.Travel, error) {
	return r.findTravel(ctx, sq.Eq{"slug": slug})
}

func (r *travelRepository) findTravel(ctx context.Context, where sq.Eq) (models.Travel, error) {
	query, args, err := buildFindTravelQuery(r.db.builder, where)
	if err != nil {
		return models.Travel{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	travel, err := scanTravel(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || r.db.violation(err) == MalformedValue {
		return models.Travel{}, ErrTravelNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*travelRepository.findTravel").Msg("error scanning travel")
		return models.Travel{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return travel, nil
}

// ListPublicTravels returns one page of public travels ordered by creation
// time, and the total number of public travels.
func (r *travelRepository) ListPublicTravels(ctx context.Context, page, perPage int) ([]models.Travel, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountPublicTravelsQuery(r.db.builder)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*travelRepository.ListPublicTravels").Msg("error counting travels")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListPublicTravelsQuery(r.db.builder, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*travelRepository.ListPublicTravels").Msg("error listing travels")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	travels := make([]models.Travel, 0, perPage)
	for rows.Next() {
		travel, err := scanTravel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		travels = append(travels, travel)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return travels, total, nil
}

// SlugsWithPrefix returns prefix itself and every "prefix-..." slug in use.
func (r *travelRepository) SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := buildSlugsWithPrefixQuery(r.db.builder, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*travelRepository.SlugsWithPrefix").Msg("error querying slugs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		slugs = append(slugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return slugs, nil
}
