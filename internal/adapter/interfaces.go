// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the travel API.
//
// The primary abstraction is [TravelAPI], implemented over HTTP/REST by
// [NewHTTPTravelAPI]. Non-2xx responses are decoded into [*APIError], which
// unwraps to one of the sentinels in errors.go so that callers can branch with
// [errors.Is] (e.g. [ErrForbidden] for 403, [ErrValidation] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-travel-api/models"
)

// TravelAPI defines the operations exposed by the travel API server.
// Implementations manage the bearer token and map transport errors to the
// sentinel values defined in this package.
type TravelAPI interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token and stores it.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Logout revokes the stored token server side and forgets it locally.
	Logout(ctx context.Context) error

	// ListTravels returns one page of public travels.
	ListTravels(ctx context.Context, page int) (models.PaginatedResponse[models.TravelResource], error)

	// ListTours returns one page of the tours of the travel identified by
	// slug, filtered and sorted by q. Zero-valued fields of q are not sent.
	ListTours(ctx context.Context, slug string, q models.TourQuery) (models.PaginatedResponse[models.TourResource], error)

	// CreateTravel requires the admin role.
	CreateTravel(ctx context.Context, req models.TravelRequest) (models.TravelResource, error)

	// UpdateTravel requires the admin or editor role.
	UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.TravelResource, error)

	// CreateTour requires the admin role.
	CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.TourResource, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
