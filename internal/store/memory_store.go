// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/query"
	"github.com/MKhiriev/go-travel-api/models"
)

// MemoryStore keeps every entity in process memory. It implements all four
// repository interfaces and is safe for concurrent use. Listings are served
// through [query.Apply], the same rules the SQL builders render.
type MemoryStore struct {
	mu sync.RWMutex

	logger *logger.Logger

	nextUserID int64
	users      map[int64]models.User
	emails     map[string]int64
	tokens     map[string]models.AccessToken
	travels    map[string]models.Travel
	slugs      map[string]string
	tours      map[string][]models.Tour
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	log.Debug().Msg("creating in-memory store")
	return &MemoryStore{
		logger:  log,
		users:   make(map[int64]models.User),
		emails:  make(map[string]int64),
		tokens:  make(map[string]models.AccessToken),
		travels: make(map[string]models.Travel),
		slugs:   make(map[string]string),
		tours:   make(map[string][]models.Tour),
	}
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func (m *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	for _, role := range user.Roles {
		if !role.IsKnown() {
			return models.User{}, ErrRoleNotFound
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.emails[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now()
	}
	user.Roles = uniqueSortedRoles(user.Roles)

	m.users[user.UserID] = user
	m.emails[user.Email] = user.UserID

	logger.FromContext(ctx).Info().Str("func", "*MemoryStore.CreateUser").Int64("user_id", user.UserID).Msg("user created")
	return cloneUser(user), nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return cloneUser(m.users[id]), nil
}

func (m *MemoryStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return cloneUser(user), nil
}

// ─────────────────────────────────────────────
// tokens
// ─────────────────────────────────────────────

func (m *MemoryStore) CreateToken(_ context.Context, token models.AccessToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[token.UserID]; !ok {
		return ErrNoUserWasFound
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = now()
	}
	m.tokens[token.ID] = token
	return nil
}

func (m *MemoryStore) FindToken(_ context.Context, tokenID string) (models.AccessToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, ok := m.tokens[tokenID]
	if !ok {
		return models.AccessToken{}, ErrTokenNotFound
	}
	return token, nil
}

func (m *MemoryStore) TouchToken(_ context.Context, tokenID string, usedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, ok := m.tokens[tokenID]
	if !ok {
		return ErrTokenNotFound
	}
	usedAt = usedAt.UTC()
	token.LastUsedAt = &usedAt
	m.tokens[tokenID] = token
	return nil
}

func (m *MemoryStore) DeleteToken(_ context.Context, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tokens[tokenID]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, tokenID)
	return nil
}

// ─────────────────────────────────────────────
// travels
// ─────────────────────────────────────────────

func (m *MemoryStore) CreateTravel(ctx context.Context, travel models.Travel) (models.Travel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slugs[travel.Slug]; ok {
		return models.Travel{}, ErrSlugAlreadyExists
	}
	if travel.CreatedAt.IsZero() {
		travel.CreatedAt = now()
	}
	if travel.UpdatedAt.IsZero() {
		travel.UpdatedAt = travel.CreatedAt
	}

	m.travels[travel.ID] = travel
	m.slugs[travel.Slug] = travel.ID

	logger.FromContext(ctx).Info().Str("func", "*MemoryStore.CreateTravel").Str("travel_id", travel.ID).Msg("travel created")
	return travel, nil
}

func (m *MemoryStore) UpdateTravel(_ context.Context, travel models.Travel) (models.Travel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.travels[travel.ID]
	if !ok {
		return models.Travel{}, ErrTravelNotFound
	}

	stored.Name = travel.Name
	stored.Description = travel.Description
	stored.IsPublic = travel.IsPublic
	stored.NumberOfDays = travel.NumberOfDays
	stored.UpdatedAt = travel.UpdatedAt
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now()
	}

	m.travels[travel.ID] = stored
	return stored, nil
}

func (m *MemoryStore) FindTravelByID(_ context.Context, travelID string) (models.Travel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	travel, ok := m.travels[travelID]
	if !ok {
		return models.Travel{}, ErrTravelNotFound
	}
	return travel, nil
}

func (m *MemoryStore) FindTravelBySlug(_ context.Context, slug string) (models.Travel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugs[slug]
	if !ok {
		return models.Travel{}, ErrTravelNotFound
	}
	return m.travels[id], nil
}

func (m *MemoryStore) ListPublicTravels(_ context.Context, page, perPage int) ([]models.Travel, int, error) {
	m.mu.RLock()
	public := make([]models.Travel, 0, len(m.travels))
	for _, travel := range m.travels {
		if travel.IsPublic {
			public = append(public, travel)
		}
	}
	m.mu.RUnlock()

	sort.Slice(public, func(i, j int) bool {
		if !public[i].CreatedAt.Equal(public[j].CreatedAt) {
			return public[i].CreatedAt.Before(public[j].CreatedAt)
		}
		return public[i].ID < public[j].ID
	})

	p := query.Paginate(public, page, perPage)
	return p.Items, p.Total, nil
}

func (m *MemoryStore) SlugsWithPrefix(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var slugs []string
	for slug := range m.slugs {
		if slug == prefix || strings.HasPrefix(slug, prefix+"-") {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// ─────────────────────────────────────────────
// tours
// ─────────────────────────────────────────────

func (m *MemoryStore) CreateTour(ctx context.Context, tour models.Tour) (models.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.travels[tour.TravelID]; !ok {
		return models.Tour{}, ErrTravelNotFound
	}
	if tour.CreatedAt.IsZero() {
		tour.CreatedAt = now()
	}
	if tour.UpdatedAt.IsZero() {
		tour.UpdatedAt = tour.CreatedAt
	}
	tour.Price = tour.Price.Round(models.PriceScale)

	m.tours[tour.TravelID] = append(m.tours[tour.TravelID], tour)

	logger.FromContext(ctx).Info().Str("func", "*MemoryStore.CreateTour").Str("tour_id", tour.ID).Msg("tour created")
	return tour, nil
}

func (m *MemoryStore) ListTours(_ context.Context, travelID string, q models.TourQuery) ([]models.Tour, int, error) {
	m.mu.RLock()
	tours := make([]models.Tour, len(m.tours[travelID]))
	copy(tours, m.tours[travelID])
	m.mu.RUnlock()

	p := query.Apply(tours, q)
	return p.Items, p.Total, nil
}

func cloneUser(user models.User) models.User {
	user.Roles = append([]models.Role(nil), user.Roles...)
	return user
}

// uniqueSortedRoles matches the role order the SQL store returns.
func uniqueSortedRoles(roles []models.Role) []models.Role {
	seen := make(map[models.Role]bool, len(roles))
	out := make([]models.Role, 0, len(roles))
	for _, role := range roles {
		if !seen[role] {
			seen[role] = true
			out = append(out, role)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
