// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-travel-api/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Password, &user.CreatedAt)
	return user, err
}

func scanToken(row rowScanner) (models.AccessToken, error) {
	var token models.AccessToken
	var lastUsedAt sql.NullTime
	if err := row.Scan(&token.ID, &token.UserID, &token.Name, &token.CreatedAt, &lastUsedAt); err != nil {
		return models.AccessToken{}, err
	}
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}
	return token, nil
}

func scanTravel(row rowScanner) (models.Travel, error) {
	var travel models.Travel
	err := row.Scan(&travel.ID, &travel.Name, &travel.Slug, &travel.Description, &travel.IsPublic,
		&travel.NumberOfDays, &travel.CreatedAt, &travel.UpdatedAt)
	return travel, err
}

func scanTour(row rowScanner) (models.Tour, error) {
	var tour models.Tour
	err := row.Scan(&tour.ID, &tour.TravelID, &tour.Name, &tour.StartingDate, &tour.EndingDate,
		&tour.Price, &tour.CreatedAt, &tour.UpdatedAt)
	return tour, err
}

// now is the timestamp stored on writes: UTC with microsecond precision,
// which both PostgreSQL and SQLite round-trip unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
