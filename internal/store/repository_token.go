// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] over the
// "personal_access_tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tokenRepository) CreateToken(ctx context.Context, token models.AccessToken) error {
	log := logger.FromContext(ctx)

	if token.CreatedAt.IsZero() {
		token.CreatedAt = now()
	}

	query, args, err := buildInsertTokenQuery(r.db.builder, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Int64("user_id", token.UserID).Msg("error saving token")
		if r.db.violation(err) == ForeignKeyViolation {
			return ErrNoUserWasFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// FindToken returns the token row, or [ErrTokenNotFound] if it does not
// exist (never issued or revoked).
func (r *tokenRepository) FindToken(ctx context.Context, tokenID string) (models.AccessToken, error) {
	query, args, err := buildFindTokenQuery(r.db.builder, tokenID)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token, err := scanToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccessToken{}, ErrTokenNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.FindToken").Msg("error scanning token")
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return token, nil
}

func (r *tokenRepository) TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error {
	query, args, err := buildTouchTokenQuery(r.db.builder, tokenID, usedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingToken(ctx, "*tokenRepository.TouchToken", query, args)
}

// DeleteToken revokes the token. Returns [ErrTokenNotFound] if it was
// already gone.
func (r *tokenRepository) DeleteToken(ctx context.Context, tokenID string) error {
	query, args, err := buildDeleteTokenQuery(r.db.builder, tokenID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingToken(ctx, "*tokenRepository.DeleteToken", query, args)
}

func (r *tokenRepository) execAffectingToken(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTokenNotFound
	}
	return nil
}
