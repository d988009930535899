// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// PageSize is the fixed number of items per listing page.
const PageSize = 15

// SortBy names a tour attribute listings can be ordered by.
type SortBy string

const (
	SortByStartingDate SortBy = "starting_date"
	SortByPrice        SortBy = "price"
)

// IsValid reports whether s is a supported sort key.
func (s SortBy) IsValid() bool {
	return s == SortByStartingDate || s == SortByPrice
}

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid reports whether s is a supported sort direction.
func (s SortOrder) IsValid() bool {
	return s == SortAsc || s == SortDesc
}

// TourQuery is the query specification of a tour listing: optional filters,
// one sort key with direction, and a 1-based page number.
//
// Nil filters are not applied. All bounds are inclusive; date bounds apply to
// the tour's starting date.
type TourQuery struct {
	PriceFrom *decimal.Decimal
	PriceTo   *decimal.Decimal
	DateFrom  *Date
	DateTo    *Date

	SortBy    SortBy
	SortOrder SortOrder

	Page int
}

// DefaultTourQuery returns the query used when no parameters are given:
// no filters, starting date ascending, first page.
func DefaultTourQuery() TourQuery {
	return TourQuery{
		SortBy:    SortByStartingDate,
		SortOrder: SortAsc,
		Page:      1,
	}
}

// Offset returns the number of items skipped before the requested page.
func (q TourQuery) Offset() int {
	return PageOffset(q.Page, PageSize)
}

// Matches reports whether tour passes every filter of q.
func (q TourQuery) Matches(tour Tour) bool {
	if q.PriceFrom != nil && tour.Price.LessThan(*q.PriceFrom) {
		return false
	}
	if q.PriceTo != nil && tour.Price.GreaterThan(*q.PriceTo) {
		return false
	}
	if q.DateFrom != nil && tour.StartingDate.Before(*q.DateFrom) {
		return false
	}
	if q.DateTo != nil && tour.StartingDate.After(*q.DateTo) {
		return false
	}
	return true
}
