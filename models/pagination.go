// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// MaxPage is the highest page number a listing accepts.
const MaxPage = math.MaxInt / PageSize

// PageOffset returns the number of items before page number page. Pages below
// 1 count as the first page; an offset past math.MaxInt saturates there.
func PageOffset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// Page is one slice of a paginated listing together with the total number of
// matching items.
type Page[T any] struct {
	Items       []T
	Total       int
	CurrentPage int
	PerPage     int
}

// NewPage builds a page; an empty items slice is never nil so that it
// serialises as [].
func NewPage[T any](items []T, total, currentPage, perPage int) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	if currentPage < 1 {
		currentPage = 1
	}
	return Page[T]{
		Items:       items,
		Total:       total,
		CurrentPage: currentPage,
		PerPage:     perPage,
	}
}

// LastPage is ceil(Total/PerPage), and never less than 1.
func (p Page[T]) LastPage() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// From is the 1-based position of the first item on the page, or nil when
// the page is empty.
func (p Page[T]) From() *int {
	if len(p.Items) == 0 {
		return nil
	}
	from := (p.CurrentPage-1)*p.PerPage + 1
	return &from
}

// To is the 1-based position of the last item on the page, or nil when the
// page is empty.
func (p Page[T]) To() *int {
	if len(p.Items) == 0 {
		return nil
	}
	to := (p.CurrentPage-1)*p.PerPage + len(p.Items)
	return &to
}

// PageMeta describes the position of a page within a listing.
type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	To          *int   `json:"to"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	Path        string `json:"path"`
}

// PageLinks holds navigation URLs; missing neighbours are null.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PaginatedResponse is the envelope of every listing endpoint.
type PaginatedResponse[T any] struct {
	Data  []T       `json:"data"`
	Meta  PageMeta  `json:"meta"`
	Links PageLinks `json:"links"`
}

// NewPaginatedResponse converts a page of entities into a response envelope.
// Links are built from path and query, replacing only the page parameter.
func NewPaginatedResponse[E, R any](page Page[E], toResource func(E) R, path string, query url.Values) PaginatedResponse[R] {
	data := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, toResource(item))
	}

	lastPage := page.LastPage()
	pageURL := func(n int) string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(n))
		return fmt.Sprintf("%s?%s", path, q.Encode())
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page.CurrentPage > 1 {
		prev := pageURL(page.CurrentPage - 1)
		links.Prev = &prev
	}
	if page.CurrentPage < lastPage {
		next := pageURL(page.CurrentPage + 1)
		links.Next = &next
	}

	return PaginatedResponse[R]{
		Data: data,
		Meta: PageMeta{
			CurrentPage: page.CurrentPage,
			From:        page.From(),
			To:          page.To(),
			LastPage:    lastPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
			Path:        path,
		},
		Links: links,
	}
}

// DataResponse wraps a single resource.
type DataResponse[T any] struct {
	Data T `json:"data"`
}
