// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-api/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validTravelRequest() models.TravelRequest {
	isPublic := models.FlexBool(true)
	return models.TravelRequest{
		Name:         "Jordan 360°",
		IsPublic:     &isPublic,
		Description:  "Petra and Wadi Rum",
		NumberOfDays: ptr(5),
	}
}

func validTourRequest() models.TourRequest {
	start := models.NewDate(2026, 10, 14)
	end := start.AddDays(4)
	return models.TourRequest{
		Name:         "Autumn departure",
		StartingDate: &start,
		EndingDate:   &end,
		Price:        models.NewAmount(decimal.RequireFromString("123.45")),
	}
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "expected ErrValidation, got %v", err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestRequestValidator_AcceptsValuesAndPointers(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	travel := validTravelRequest()
	tour := validTourRequest()
	creds := models.Credentials{Email: "admin@example.com", Password: "password"}

	assert.NoError(t, v.Validate(ctx, travel))
	assert.NoError(t, v.Validate(ctx, &travel))
	assert.NoError(t, v.Validate(ctx, tour))
	assert.NoError(t, v.Validate(ctx, &tour))
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestRequestValidator_Credentials(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.Credentials
		wantFields map[string]string
	}{
		{
			name:  "both missing",
			creds: models.Credentials{},
			wantFields: map[string]string{
				FieldEmail:    "The email field is required.",
				FieldPassword: "The password field is required.",
			},
		},
		{
			name:       "malformed email",
			creds:      models.Credentials{Email: "not-an-email", Password: "x"},
			wantFields: map[string]string{FieldEmail: "The email field must be a valid email address."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := requireValidationError(t, NewRequestValidator().Validate(context.Background(), tt.creds))

			assert.Len(t, verr.Fields, len(tt.wantFields))
			for field, msg := range tt.wantFields {
				assert.Equal(t, []string{msg}, verr.Fields[field])
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TravelRequest
// ---------------------------------------------------------------------------

func TestRequestValidator_TravelRequiredFields(t *testing.T) {
	verr := requireValidationError(t, NewRequestValidator().Validate(context.Background(), models.TravelRequest{}))

	assert.Equal(t, []string{"The name field is required."}, verr.Fields[FieldName])
	assert.Equal(t, []string{"The is public field is required."}, verr.Fields[FieldIsPublic])
	assert.Equal(t, []string{"The description field is required."}, verr.Fields[FieldDescription])
	assert.Equal(t, []string{"The number of days field is required."}, verr.Fields[FieldNumberOfDays])
	assert.Equal(t, "The name field is required. (and 3 more errors)", verr.Message())
}

func TestRequestValidator_TravelIsPublicFalseIsPresent(t *testing.T) {
	req := validTravelRequest()
	isPublic := models.FlexBool(false)
	req.IsPublic = &isPublic

	assert.NoError(t, NewRequestValidator().Validate(context.Background(), req))
}

func TestRequestValidator_TravelBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.TravelRequest)
		field   string
		message string
	}{
		{
			name:    "zero days",
			mutate:  func(r *models.TravelRequest) { r.NumberOfDays = ptr(0) },
			field:   FieldNumberOfDays,
			message: "The number of days field must be at least 1.",
		},
		{
			name:    "name too long",
			mutate:  func(r *models.TravelRequest) { r.Name = strings.Repeat("a", 256) },
			field:   FieldName,
			message: "The name field must not be greater than 255 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTravelRequest()
			tt.mutate(&req)

			verr := requireValidationError(t, NewRequestValidator().Validate(context.Background(), req))
			assert.Equal(t, []string{tt.message}, verr.Fields[tt.field])
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestRequestValidator_TravelNameLengthCountsCharacters(t *testing.T) {
	req := validTravelRequest()
	req.Name = strings.Repeat("é", 255)

	assert.NoError(t, NewRequestValidator().Validate(context.Background(), req))
}

// ---------------------------------------------------------------------------
// TourRequest
// ---------------------------------------------------------------------------

func TestRequestValidator_TourRequiredFields(t *testing.T) {
	verr := requireValidationError(t, NewRequestValidator().Validate(context.Background(), models.TourRequest{}))

	for _, field := range []string{FieldName, FieldStartingDate, FieldEndingDate, FieldPrice} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.Equal(t, []string{"The starting date field is required."}, verr.Fields[FieldStartingDate])
}

func TestRequestValidator_TourEndingBeforeStarting(t *testing.T) {
	req := validTourRequest()
	before := req.StartingDate.AddDays(-1)
	req.EndingDate = &before

	verr := requireValidationError(t, NewRequestValidator().Validate(context.Background(), req))

	assert.Equal(t,
		[]string{"The ending date field must be a date after or equal to starting date."},
		verr.Fields[FieldEndingDate])
}

func TestRequestValidator_TourSameDayIsValid(t *testing.T) {
	req := validTourRequest()
	req.EndingDate = ptr(*req.StartingDate)

	assert.NoError(t, NewRequestValidator().Validate(context.Background(), req))
}

func TestRequestValidator_TourPriceBounds(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"zero", "0", false},
		{"negative", "-0.01", true},
		{"max", "99999999.99", false},
		{"above max", "100000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTourRequest()
			req.Price = models.NewAmount(decimal.RequireFromString(tt.price))

			err := NewRequestValidator().Validate(context.Background(), req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			verr := requireValidationError(t, err)
			assert.Contains(t, verr.Fields, FieldPrice)
		})
	}
}
