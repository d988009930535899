// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Travel is a travel package offering. It owns zero or more tours.
type Travel struct {
	// ID is a time-ordered UUID assigned on creation.
	ID string `json:"id"`

	// Name is the human-readable travel name.
	Name string `json:"name"`

	// Slug is the URL-safe unique identifier derived from Name on creation.
	// It never changes afterwards.
	Slug string `json:"slug"`

	// Description is free text, stored sanitised of any markup.
	Description string `json:"description"`

	// IsPublic controls whether the travel appears in public listings.
	IsPublic bool `json:"is_public"`

	// NumberOfDays is the travel duration in days (at least 1).
	NumberOfDays int `json:"number_of_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Travel model.
func (t Travel) TableName() string {
	return "travels"
}

// NumberOfNights is derived from NumberOfDays.
func (t Travel) NumberOfNights() int {
	if t.NumberOfDays < 1 {
		return 0
	}
	return t.NumberOfDays - 1
}

// TravelRequest is the body of the create and update travel endpoints.
// Pointer fields distinguish a missing value from a zero value.
type TravelRequest struct {
	Name         string    `json:"name" validate:"required,max=255"`
	IsPublic     *FlexBool `json:"is_public" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	NumberOfDays *int      `json:"number_of_days" validate:"required,min=1"`
}

// TravelResource is the public representation of a travel.
type TravelResource struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	IsPublic       bool   `json:"is_public"`
	NumberOfDays   int    `json:"number_of_days"`
	NumberOfNights int    `json:"number_of_nights"`
}

// NewTravelResource shapes a travel for API responses.
func NewTravelResource(t Travel) TravelResource {
	return TravelResource{
		ID:             t.ID,
		Name:           t.Name,
		Slug:           t.Slug,
		Description:    t.Description,
		IsPublic:       t.IsPublic,
		NumberOfDays:   t.NumberOfDays,
		NumberOfNights: t.NumberOfNights(),
	}
}
