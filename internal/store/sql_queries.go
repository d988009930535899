// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-api/models"
)

var (
	userColumns   = []string{"id", "name", "email", "password", "created_at"}
	tokenColumns  = []string{"id", "user_id", "name", "created_at", "last_used_at"}
	travelColumns = []string{"id", "name", "slug", "description", "is_public", "number_of_days", "created_at", "updated_at"}
	tourColumns   = []string{"id", "travel_id", "name", "starting_date", "ending_date", "price", "created_at", "updated_at"}
)

// ─────────────────────────────────────────────
// users & roles
// ─────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "password", "created_at", "updated_at").
		Values(user.Name, user.Email, user.Password, user.CreatedAt, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildFindRolesQuery(b sq.StatementBuilderType, roles []models.Role) (string, []any, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	return b.Select("id", "name").
		From("roles").
		Where(sq.Eq{"name": names}).
		ToSql()
}

func buildInsertRoleUserQuery(b sq.StatementBuilderType, userID int64, roleIDs []int64) (string, []any, error) {
	insert := b.Insert("role_user").Columns("user_id", "role_id")
	for _, roleID := range roleIDs {
		insert = insert.Values(userID, roleID)
	}
	return insert.ToSql()
}

func buildUserRolesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("r.name").
		From("roles r").
		Join("role_user ru ON ru.role_id = r.id").
		Where(sq.Eq{"ru.user_id": userID}).
		OrderBy("r.name ASC").
		ToSql()
}

// ─────────────────────────────────────────────
// personal access tokens
// ─────────────────────────────────────────────

func buildInsertTokenQuery(b sq.StatementBuilderType, token models.AccessToken) (string, []any, error) {
	return b.Insert("personal_access_tokens").
		Columns("id", "user_id", "name", "created_at").
		Values(token.ID, token.UserID, token.Name, token.CreatedAt).
		ToSql()
}

func buildFindTokenQuery(b sq.StatementBuilderType, tokenID string) (string, []any, error) {
	return b.Select(tokenColumns...).
		From("personal_access_tokens").
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildTouchTokenQuery(b sq.StatementBuilderType, tokenID string, usedAt time.Time) (string, []any, error) {
	return b.Update("personal_access_tokens").
		Set("last_used_at", usedAt).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildDeleteTokenQuery(b sq.StatementBuilderType, tokenID string) (string, []any, error) {
	return b.Delete("personal_access_tokens").
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

// ─────────────────────────────────────────────
// travels
// ─────────────────────────────────────────────

func buildInsertTravelQuery(b sq.StatementBuilderType, travel models.Travel) (string, []any, error) {
	return b.Insert("travels").
		Columns(travelColumns...).
		Values(travel.ID, travel.Name, travel.Slug, travel.Description, travel.IsPublic,
			travel.NumberOfDays, travel.CreatedAt, travel.UpdatedAt).
		ToSql()
}

// buildUpdateTravelQuery sets the editable columns. slug and created_at are
// left untouched.
func buildUpdateTravelQuery(b sq.StatementBuilderType, travel models.Travel) (string, []any, error) {
	return b.Update("travels").
		Set("name", travel.Name).
		Set("description", travel.Description).
		Set("is_public", travel.IsPublic).
		Set("number_of_days", travel.NumberOfDays).
		Set("updated_at", travel.UpdatedAt).
		Where(sq.Eq{"id": travel.ID}).
		ToSql()
}

func buildFindTravelQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(travelColumns...).
		From("travels").
		Where(where).
		ToSql()
}

func buildListPublicTravelsQuery(b sq.StatementBuilderType, page, perPage int) (string, []any, error) {
	return b.Select(travelColumns...).
		From("travels").
		Where(sq.Eq{"is_public": true}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(perPage)).
		Offset(uint64(models.PageOffset(page, perPage))).
		ToSql()
}

func buildCountPublicTravelsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("travels").
		Where(sq.Eq{"is_public": true}).
		ToSql()
}

func buildSlugsWithPrefixQuery(b sq.StatementBuilderType, prefix string) (string, []any, error) {
	return b.Select("slug").
		From("travels").
		Where(sq.Or{
			sq.Eq{"slug": prefix},
			sq.Like{"slug": prefix + "-%"},
		}).
		ToSql()
}

// ─────────────────────────────────────────────
// tours
// ─────────────────────────────────────────────

func buildInsertTourQuery(b sq.StatementBuilderType, tour models.Tour) (string, []any, error) {
	return b.Insert("tours").
		Columns(tourColumns...).
		Values(tour.ID, tour.TravelID, tour.Name, tour.StartingDate, tour.EndingDate,
			tour.Price, tour.CreatedAt, tour.UpdatedAt).
		ToSql()
}

// buildListToursQuery renders q for the tours of one travel: filters, the
// requested ordering with starting date and id as tie-breaks, and one page of
// [models.PageSize] rows.
func buildListToursQuery(b sq.StatementBuilderType, travelID string, q models.TourQuery) (string, []any, error) {
	return tourFilters(b.Select(tourColumns...).From("tours"), travelID, q).
		OrderBy(tourOrderBy(q)...).
		Limit(uint64(models.PageSize)).
		Offset(uint64(q.Offset())).
		ToSql()
}

// buildCountToursQuery counts the tours matching the filters of q.
func buildCountToursQuery(b sq.StatementBuilderType, travelID string, q models.TourQuery) (string, []any, error) {
	return tourFilters(b.Select("COUNT(*)").From("tours"), travelID, q).ToSql()
}

func tourFilters(sel sq.SelectBuilder, travelID string, q models.TourQuery) sq.SelectBuilder {
	sel = sel.Where(sq.Eq{"travel_id": travelID})
	if q.PriceFrom != nil {
		sel = sel.Where(sq.GtOrEq{"price": *q.PriceFrom})
	}
	if q.PriceTo != nil {
		sel = sel.Where(sq.LtOrEq{"price": *q.PriceTo})
	}
	if q.DateFrom != nil {
		sel = sel.Where(sq.GtOrEq{"starting_date": *q.DateFrom})
	}
	if q.DateTo != nil {
		sel = sel.Where(sq.LtOrEq{"starting_date": *q.DateTo})
	}
	return sel
}

func tourOrderBy(q models.TourQuery) []string {
	direction := "ASC"
	if q.SortOrder == models.SortDesc {
		direction = "DESC"
	}

	if q.SortBy == models.SortByPrice {
		return []string{"price " + direction, "starting_date ASC", "id ASC"}
	}
	return []string{"starting_date " + direction, "id ASC"}
}
