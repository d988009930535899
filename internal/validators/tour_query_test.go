// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-api/models"
)

func TestParseTourQuery_Defaults(t *testing.T) {
	q, err := ParseTourQuery(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, models.DefaultTourQuery(), q)
}

func TestParseTourQuery_AllParameters(t *testing.T) {
	values := url.Values{
		ParamPriceFrom: {"100"},
		ParamPriceTo:   {"123.45"},
		ParamDateFrom:  {"2026-10-14 09:30:00"},
		ParamDateTo:    {"2026-11-01"},
		ParamSortBy:    {"price"},
		ParamSortOrder: {"DESC"},
		ParamPage:      {"2"},
	}

	q, err := ParseTourQuery(values)

	require.NoError(t, err)
	require.NotNil(t, q.PriceFrom)
	require.NotNil(t, q.PriceTo)
	assert.Equal(t, "100", q.PriceFrom.String())
	assert.Equal(t, "123.45", q.PriceTo.String())
	require.NotNil(t, q.DateFrom)
	require.NotNil(t, q.DateTo)
	assert.Equal(t, "2026-10-14", q.DateFrom.String())
	assert.Equal(t, "2026-11-01", q.DateTo.String())
	assert.Equal(t, models.SortByPrice, q.SortBy)
	assert.Equal(t, models.SortDesc, q.SortOrder)
	assert.Equal(t, 2, q.Page)
}

func TestParseTourQuery_EmptyValuesAreIgnored(t *testing.T) {
	q, err := ParseTourQuery(url.Values{ParamPriceFrom: {""}, ParamDateTo: {"  "}, ParamPage: {""}})

	require.NoError(t, err)
	assert.Nil(t, q.PriceFrom)
	assert.Nil(t, q.DateTo)
	assert.Equal(t, 1, q.Page)
}

func TestParseTourQuery_MalformedValues(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		field   string
		message string
	}{
		{"priceFrom", url.Values{ParamPriceFrom: {"abcd"}}, ParamPriceFrom, "The price from field must be a number."},
		{"priceTo", url.Values{ParamPriceTo: {"abcd"}}, ParamPriceTo, "The price to field must be a number."},
		{"dateFrom", url.Values{ParamDateFrom: {"abcd"}}, ParamDateFrom, "The date from field must be a valid date."},
		{"dateTo", url.Values{ParamDateTo: {"2026-13-01"}}, ParamDateTo, "The date to field must be a valid date."},
		{"sortBy", url.Values{ParamSortBy: {"name"}}, ParamSortBy, "The selected sort by is invalid."},
		{"sortOrder", url.Values{ParamSortOrder: {"up"}}, ParamSortOrder, "The selected sort order is invalid."},
		{"page not a number", url.Values{ParamPage: {"x"}}, ParamPage, "The page field must be an integer."},
		{"page zero", url.Values{ParamPage: {"0"}}, ParamPage, "The page field must be at least 1."},
		{"page past max", url.Values{ParamPage: {strconv.Itoa(models.MaxPage + 1)}}, ParamPage,
			fmt.Sprintf("The page field must not be greater than %d.", models.MaxPage)},
		{"page out of int range", url.Values{ParamPage: {"99999999999999999999"}}, ParamPage, "The page field must be an integer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTourQuery(tt.values)

			verr := requireValidationError(t, err)
			assert.Equal(t, map[string][]string{tt.field: {tt.message}}, verr.Fields)
		})
	}
}

func TestParseTourQuery_ReportsEveryMalformedParameter(t *testing.T) {
	_, err := ParseTourQuery(url.Values{
		ParamPriceFrom: {"abcd"},
		ParamDateFrom:  {"abcd"},
		ParamSortBy:    {"abcd"},
	})

	verr := requireValidationError(t, err)
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "The price from field must be a number. (and 2 more errors)", verr.Message())
}

func TestParsePage_AcceptsMaxPage(t *testing.T) {
	verr := NewValidationError()

	page, ok := ParsePage(url.Values{ParamPage: {strconv.Itoa(models.MaxPage)}}, verr)

	assert.True(t, ok)
	assert.Equal(t, models.MaxPage, page)
	assert.False(t, verr.HasErrors())
}
