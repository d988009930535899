// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-travel-api/models"
)

// Query parameters of the tour listing.
const (
	ParamPriceFrom = "priceFrom"
	ParamPriceTo   = "priceTo"
	ParamDateFrom  = "dateFrom"
	ParamDateTo    = "dateTo"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
	ParamPage      = "page"
)

// ParseTourQuery builds a [models.TourQuery] from listing query parameters.
//
// Absent and empty parameters keep their defaults. Every malformed parameter
// is reported in the returned *ValidationError; a malformed filter is never
// silently dropped.
func ParseTourQuery(values url.Values) (models.TourQuery, error) {
	q := models.DefaultTourQuery()
	verr := NewValidationError()

	q.PriceFrom = parseDecimalParam(values, ParamPriceFrom, verr)
	q.PriceTo = parseDecimalParam(values, ParamPriceTo, verr)
	q.DateFrom = parseDateParam(values, ParamDateFrom, verr)
	q.DateTo = parseDateParam(values, ParamDateTo, verr)

	if raw := param(values, ParamSortBy); raw != "" {
		sortBy := models.SortBy(raw)
		if !sortBy.IsValid() {
			verr.Add(ParamSortBy, fmt.Sprintf("The selected %s is invalid.", attributeName(ParamSortBy)))
		} else {
			q.SortBy = sortBy
		}
	}

	if raw := param(values, ParamSortOrder); raw != "" {
		sortOrder := models.SortOrder(strings.ToLower(raw))
		if !sortOrder.IsValid() {
			verr.Add(ParamSortOrder, fmt.Sprintf("The selected %s is invalid.", attributeName(ParamSortOrder)))
		} else {
			q.SortOrder = sortOrder
		}
	}

	page, ok := ParsePage(values, verr)
	if ok {
		q.Page = page
	}

	if err := verr.OrNil(); err != nil {
		return models.TourQuery{}, err
	}
	return q, nil
}

// ParsePage reads the 1-based page parameter, at most [models.MaxPage]. A
// missing page is page 1; a malformed one is recorded in verr and reported with ok == false.
func ParsePage(values url.Values, verr *ValidationError) (page int, ok bool) {
	raw := param(values, ParamPage)
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		verr.Add(ParamPage, fmt.Sprintf("The %s field must be an integer.", attributeName(ParamPage)))
		return 0, false
	}
	if page < 1 {
		verr.Add(ParamPage, fmt.Sprintf("The %s field must be at least 1.", attributeName(ParamPage)))
		return 0, false
	}
	if page > models.MaxPage {
		verr.Add(ParamPage, fmt.Sprintf("The %s field must not be greater than %d.", attributeName(ParamPage), models.MaxPage))
		return 0, false
	}
	return page, true
}

func parseDecimalParam(values url.Values, name string, verr *ValidationError) *decimal.Decimal {
	raw := param(values, name)
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(name, fmt.Sprintf("The %s field must be a number.", attributeName(name)))
		return nil
	}
	return &d
}

func parseDateParam(values url.Values, name string, verr *ValidationError) *models.Date {
	raw := param(values, name)
	if raw == "" {
		return nil
	}

	d, err := models.ParseDate(raw)
	if err != nil {
		verr.Add(name, fmt.Sprintf("The %s field must be a valid date.", attributeName(name)))
		return nil
	}
	return &d
}

func param(values url.Values, name string) string {
	return strings.TrimSpace(values.Get(name))
}
