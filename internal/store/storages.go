// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/config"
	"github.com/MKhiriev/go-travel-api/internal/logger"
)

// Storages groups the repositories the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	TokenRepository  TokenRepository
	TravelRepository TravelRepository
	TourRepository   TourRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver. SQL backends are
// migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		mem := NewMemoryStore(log)
		return &Storages{
			UserRepository:   mem,
			TokenRepository:  mem,
			TravelRepository: mem,
			TourRepository:   mem,
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages builds the SQL repositories over an already migrated db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		TokenRepository:  NewTokenRepository(db, log),
		TravelRepository: NewTravelRepository(db, log),
		TourRepository:   NewTourRepository(db, log),
		db:               db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
