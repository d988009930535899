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

// userRepository is the SQL implementation of [UserRepository]. It handles
// user account creation and lookup against the "users", "roles" and
// "role_user" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user row and its role assignments in one
// transaction and returns the user with its server-assigned ID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - a role missing from the roles table → [ErrRoleNotFound].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = now()
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertUserQuery(r.db.builder, user)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if r.db.violation(err) == UniqueViolation {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(user.Roles) == 0 {
			return nil
		}
		return r.assignRoles(ctx, tx, user.UserID, user.Roles)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "*userRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")
	return user, nil
}

func (r *userRepository) assignRoles(ctx context.Context, tx *sql.Tx, userID int64, roles []models.Role) error {
	query, args, err := buildFindRolesQuery(r.db.builder, roles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make(map[models.Role]int64, len(roles))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		found[models.Role(name)] = id
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	roleIDs := make([]int64, 0, len(roles))
	seen := make(map[int64]bool, len(roles))
	for _, role := range roles {
		id, ok := found[role]
		if !ok {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, role)
		}
		if !seen[id] {
			seen[id] = true
			roleIDs = append(roleIDs, id)
		}
	}

	query, args, err = buildInsertRoleUserQuery(r.db.builder, userID, roleIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// FindUserByEmail retrieves the user whose email matches, roles included.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the user with userID, roles included.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	roles, err := r.userRoles(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Int64("user_id", user.UserID).Msg("error loading roles")
		return models.User{}, err
	}
	user.Roles = roles

	return user, nil
}

func (r *userRepository) userRoles(ctx context.Context, userID int64) ([]models.Role, error) {
	query, args, err := buildUserRolesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0, 2)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		roles = append(roles, models.Role(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return roles, nil
}
