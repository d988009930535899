// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users, access tokens, travels and tours.
//
// Three backends implement the repository interfaces: PostgreSQL (pgx),
// SQLite (mattn/go-sqlite3) and an in-memory store. SQL statements are built
// with squirrel so the same builders serve both SQL dialects.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-travel-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes user accounts and their role assignments.
type UserRepository interface {
	// CreateUser inserts user with the given roles and returns it with its
	// server-assigned ID and timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with email, roles included.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with userID, roles included.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TokenRepository stores personal access tokens.
type TokenRepository interface {
	CreateToken(ctx context.Context, token models.AccessToken) error
	FindToken(ctx context.Context, tokenID string) (models.AccessToken, error)
	TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error
	DeleteToken(ctx context.Context, tokenID string) error
}

// TravelRepository stores travels.
type TravelRepository interface {
	CreateTravel(ctx context.Context, travel models.Travel) (models.Travel, error)
	// UpdateTravel overwrites the editable fields of the travel with
	// travel.ID. The slug is never changed.
	UpdateTravel(ctx context.Context, travel models.Travel) (models.Travel, error)
	FindTravelByID(ctx context.Context, travelID string) (models.Travel, error)
	FindTravelBySlug(ctx context.Context, slug string) (models.Travel, error)
	// ListPublicTravels returns one page of public travels, oldest first,
	// and the total number of public travels.
	ListPublicTravels(ctx context.Context, page, perPage int) ([]models.Travel, int, error)
	// SlugsWithPrefix returns slugs equal to prefix or starting with
	// prefix followed by '-'.
	SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// TourRepository stores tours.
type TourRepository interface {
	CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error)
	// ListTours returns the page of the travel's tours selected by q and
	// the number of tours matching q's filters.
	ListTours(ctx context.Context, travelID string, q models.TourQuery) ([]models.Tour, int, error)
}

// ErrorClassificator interprets driver errors of one database engine.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// Violation reports which integrity constraint err violated, if any.
	Violation(err error) ConstraintViolation
}
