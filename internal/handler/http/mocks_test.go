// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/service"
	"github.com/MKhiriev/go-travel-api/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User, name string) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn  func(ctx context.Context, token models.Token) (models.User, error)
	authorizeFn    func(ctx context.Context, user models.User, roles ...models.Role) error
	revokeTokenFn  func(ctx context.Context, token models.Token) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User, name string) (models.Token, error) {
	return m.createTokenFn(ctx, user, name)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, token models.Token) (models.User, error) {
	return m.currentUserFn(ctx, token)
}

func (m *mockAuthService) Authorize(ctx context.Context, user models.User, roles ...models.Role) error {
	return m.authorizeFn(ctx, user, roles...)
}

func (m *mockAuthService) RevokeToken(ctx context.Context, token models.Token) error {
	return m.revokeTokenFn(ctx, token)
}

// authAs returns an AuthService accepting the bearer token "valid" for a user
// holding roles. Role checks follow the real membership rule.
func authAs(roles ...models.Role) *mockAuthService {
	token := models.Token{SignedString: "valid", UserID: 7, TokenID: "token-1"}
	user := models.User{UserID: 7, Email: "admin@example.com", Roles: roles}

	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != token.SignedString {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return token, nil
		},
		currentUserFn: func(_ context.Context, _ models.Token) (models.User, error) {
			return user, nil
		},
		authorizeFn: func(_ context.Context, u models.User, required ...models.Role) error {
			if len(required) == 0 || u.HasAnyRole(required...) {
				return nil
			}
			return service.ErrForbidden
		},
		revokeTokenFn: func(_ context.Context, _ models.Token) error {
			return nil
		},
	}
}

// ─────────────────────────────────────────────
// Mock TravelService / TourService
// ─────────────────────────────────────────────

type mockTravelService struct {
	listPublicTravelsFn func(ctx context.Context, page int) (models.Page[models.Travel], error)
	createTravelFn      func(ctx context.Context, req models.TravelRequest) (models.Travel, error)
	updateTravelFn      func(ctx context.Context, travelID string, req models.TravelRequest) (models.Travel, error)
}

func (m *mockTravelService) ListPublicTravels(ctx context.Context, page int) (models.Page[models.Travel], error) {
	return m.listPublicTravelsFn(ctx, page)
}

func (m *mockTravelService) CreateTravel(ctx context.Context, req models.TravelRequest) (models.Travel, error) {
	return m.createTravelFn(ctx, req)
}

func (m *mockTravelService) UpdateTravel(ctx context.Context, travelID string, req models.TravelRequest) (models.Travel, error) {
	return m.updateTravelFn(ctx, travelID, req)
}

type mockTourService struct {
	listToursFn  func(ctx context.Context, travelSlug string, q models.TourQuery) (models.Page[models.Tour], error)
	createTourFn func(ctx context.Context, travelID string, req models.TourRequest) (models.Tour, error)
}

func (m *mockTourService) ListTours(ctx context.Context, travelSlug string, q models.TourQuery) (models.Page[models.Tour], error) {
	return m.listToursFn(ctx, travelSlug, q)
}

func (m *mockTourService) CreateTour(ctx context.Context, travelID string, req models.TourRequest) (models.Tour, error) {
	return m.createTourFn(ctx, travelID, req)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices fills every service the router may reach; nil arguments
// are replaced with mocks whose unset functions panic when called.
func newTestServices(auth service.AuthService, travels service.TravelService, tours service.TourService) *service.Services {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if travels == nil {
		travels = &mockTravelService{}
	}
	if tours == nil {
		tours = &mockTourService{}
	}
	return &service.Services{
		AuthService:    auth,
		TravelService:  travels,
		TourService:    tours,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
}

// newTestRouterHandler builds a Handler over the given mocks.
func newTestRouterHandler(t *testing.T, auth service.AuthService, travels service.TravelService, tours service.TourService) *Handler {
	t.Helper()
	return NewHandler(newTestServices(auth, travels, tours), 0, logger.Nop())
}
