// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/go-travel-api/models"
)

// Apply runs the whole pipeline: Filter, Sort, then Paginate with
// [models.PageSize]. The input slice is not modified.
func Apply(tours []models.Tour, q models.TourQuery) models.Page[models.Tour] {
	filtered := Filter(tours, q)
	Sort(filtered, q.SortBy, q.SortOrder)
	return Paginate(filtered, q.Page, models.PageSize)
}

// Filter returns a new slice holding the tours that match every filter of q,
// in their original order.
func Filter(tours []models.Tour, q models.TourQuery) []models.Tour {
	filtered := make([]models.Tour, 0, len(tours))
	for _, tour := range tours {
		if q.Matches(tour) {
			filtered = append(filtered, tour)
		}
	}
	return filtered
}

// Sort orders tours in place by key and direction. Ties are broken by starting
// date ascending and then by ID, which follows insertion order, so the output
// is identical across calls. Unknown keys and directions fall back to the
// defaults.
func Sort(tours []models.Tour, key models.SortBy, order models.SortOrder) {
	if !key.IsValid() {
		key = models.SortByStartingDate
	}
	desc := order == models.SortDesc

	slices.SortStableFunc(tours, func(a, b models.Tour) int {
		var c int
		switch key {
		case models.SortByPrice:
			c = a.Price.Cmp(b.Price)
		default:
			c = a.StartingDate.Compare(b.StartingDate.Time)
		}
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}

		if key != models.SortByStartingDate {
			if c = a.StartingDate.Compare(b.StartingDate.Time); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// Paginate cuts page number page (1-based) of size perPage out of items.
// Pages past the end are empty but still report the total.
func Paginate[T any](items []T, page, perPage int) models.Page[T] {
	if page < 1 {
		page = 1
	}

	total := len(items)
	start := min(models.PageOffset(page, perPage), total)
	end := min(start+max(perPage, 0), total)

	return models.NewPage(slices.Clone(items[start:end]), total, page, perPage)
}
