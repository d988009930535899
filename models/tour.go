// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits prices are stored and
// serialised with.
const PriceScale = 2

// Tour is a bookable instance of a travel with specific dates and price.
type Tour struct {
	// ID is a time-ordered UUID assigned on creation, so ordering by ID
	// follows insertion order.
	ID string `json:"id"`

	// TravelID references the owning travel. Tours are deleted with it.
	TravelID string `json:"travel_id"`

	Name         string          `json:"name"`
	StartingDate Date            `json:"starting_date"`
	EndingDate   Date            `json:"ending_date"`
	Price        decimal.Decimal `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tour model.
func (t Tour) TableName() string {
	return "tours"
}

// TourRequest is the body of the create tour endpoint.
type TourRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	StartingDate *Date   `json:"starting_date" validate:"required"`
	EndingDate   *Date   `json:"ending_date" validate:"required"`
	Price        *Amount `json:"price" validate:"required"`
}

// Amount is a decimal accepted from request bodies as a JSON number or a
// numeric string.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) *Amount {
	return &Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if err := a.Decimal.UnmarshalJSON(b); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(a.Decimal)}
	}
	return nil
}

// TourResource is the public representation of a tour.
// Price is a fixed-point decimal string to avoid float rounding on clients.
type TourResource struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartingDate Date   `json:"starting_date"`
	EndingDate   Date   `json:"ending_date"`
	Price        string `json:"price"`
}

// NewTourResource shapes a tour for API responses.
func NewTourResource(t Tour) TourResource {
	return TourResource{
		ID:           t.ID,
		Name:         t.Name,
		StartingDate: t.StartingDate,
		EndingDate:   t.EndingDate,
		Price:        t.Price.StringFixed(PriceScale),
	}
}
