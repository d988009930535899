// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies and
// listing query parameters.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary request values.
//   - ValidationError: per-field messages collected during validation,
//     matched with errors.Is against ErrValidation.
//
// Struct rules are declared with `validate` tags and checked by
// go-playground/validator; field names in messages follow the `json` tags.
// Rules spanning several fields (tour dates, price bounds) are checked in
// code after the tag rules pass.
package validators

import "context"

// Validator defines a generic validation interface for request values.
// Implementations return a [*ValidationError] when the value is invalid and
// [ErrUnsupportedType] when they do not know the value's type.
type Validator interface {
	Validate(ctx context.Context, value any) error
}
