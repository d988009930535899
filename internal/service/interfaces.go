// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the travel API: credential
// checks and access tokens, role-based authorization, travel slugs and tour
// listings. Services depend only on the store interfaces.
package service

import (
	"context"

	"github.com/MKhiriev/go-travel-api/models"
)

type AuthService interface {
	// RegisterUser hashes the plain-text password and stores the user with
	// the given roles.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login returns the user owning creds, or ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	// CreateToken issues a new revocable access token named name for user.
	CreateToken(ctx context.Context, user models.User, name string) (models.Token, error)
	// ParseToken verifies tokenString and checks that it was not revoked.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser loads the owner of token.
	CurrentUser(ctx context.Context, token models.Token) (models.User, error)
	// Authorize reports ErrForbidden unless user holds one of roles.
	Authorize(ctx context.Context, user models.User, roles ...models.Role) error
	// RevokeToken deletes token so it can no longer authenticate.
	RevokeToken(ctx context.Context, token models.Token) error
}

type TravelService interface {
	ListPublicTravels(ctx context.Context, page int) (models.Page[models.Travel], error)
	CreateTravel(ctx context.Context, req models.TravelRequest) (models.Travel, error)
	UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.Travel, error)
}

type TourService interface {
	// ListTours resolves the travel by slug and returns the page of its
	// tours selected by q.
	ListTours(ctx context.Context, travelSlug string, q models.TourQuery) (models.Page[models.Tour], error)
	CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.Tour, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// TravelServiceWrapper defines middleware composition for TravelService.
type TravelServiceWrapper interface {
	Wrap(TravelService) TravelService
}

// TourServiceWrapper defines middleware composition for TourService.
type TourServiceWrapper interface {
	Wrap(TourService) TourService
}
