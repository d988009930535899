// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-travel-api/models"
)

// Field names as they appear in request bodies and messages.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldIsPublic     = "is_public"
	FieldDescription  = "description"
	FieldNumberOfDays = "number_of_days"
	FieldStartingDate = "starting_date"
	FieldEndingDate   = "ending_date"
	FieldPrice        = "price"
)

// maxPrice is the largest price the tours table can hold, NUMERIC(10,2).
var maxPrice = decimal.RequireFromString("99999999.99")

// RequestValidator validates the request bodies of the API:
// models.Credentials, models.TravelRequest and models.TourRequest, as values
// or pointers.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator whose messages name
// fields by their json tags.
func NewRequestValidator() *RequestValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the tag rules of value and then the cross-field rules of
// its type. Every violation is reported in the returned *ValidationError.
func (v *RequestValidator) Validate(ctx context.Context, value any) error {
	switch req := value.(type) {
	case models.Credentials:
		return v.validateStruct(ctx, &req).OrNil()
	case *models.Credentials:
		return v.validateStruct(ctx, req).OrNil()
	case models.TravelRequest:
		return v.validateStruct(ctx, &req).OrNil()
	case *models.TravelRequest:
		return v.validateStruct(ctx, req).OrNil()
	case models.TourRequest:
		return v.validateTourRequest(ctx, &req)
	case *models.TourRequest:
		return v.validateTourRequest(ctx, req)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *RequestValidator) validateTourRequest(ctx context.Context, req *models.TourRequest) error {
	verr := v.validateStruct(ctx, req)

	if req.StartingDate != nil && req.EndingDate != nil && req.EndingDate.Before(*req.StartingDate) {
		verr.Add(FieldEndingDate, fmt.Sprintf("The %s field must be a date after or equal to %s.",
			attributeName(FieldEndingDate), attributeName(FieldStartingDate)))
	}

	if req.Price != nil {
		switch {
		case req.Price.IsNegative():
			verr.Add(FieldPrice, fmt.Sprintf("The %s field must be at least 0.", attributeName(FieldPrice)))
		case req.Price.GreaterThan(maxPrice):
			verr.Add(FieldPrice, fmt.Sprintf("The %s field must not be greater than %s.", attributeName(FieldPrice), maxPrice))
		}
	}

	return verr.OrNil()
}

// validateStruct runs the `validate` tag rules of s and converts the
// failures into messages.
func (v *RequestValidator) validateStruct(ctx context.Context, s any) *ValidationError {
	verr := NewValidationError()

	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return verr
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		verr.Add("", err.Error())
		return verr
	}
	for _, fe := range fieldErrors {
		verr.Add(fe.Field(), fieldMessage(fe))
	}
	return verr
}

// fieldMessage renders one tag failure as a sentence.
func fieldMessage(fe validator.FieldError) string {
	attr := attributeName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", attr, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", attr, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}
