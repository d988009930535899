// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ValidationError collects validation messages per input field.
type ValidationError struct {
	Fields map[string][]string

	// order keeps fields in the order they were first reported.
	order []string
}

// NewValidationError returns an empty error ready for [ValidationError.Add].
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records message for field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any message was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e when it holds messages and nil otherwise.
func (e *ValidationError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Message summarises the error: the first message, followed by the count of
// the remaining ones.
func (e *ValidationError) Message() string {
	first := ""
	total := 0
	for _, field := range e.fieldOrder() {
		for _, msg := range e.Fields[field] {
			if first == "" {
				first = msg
			}
			total++
		}
	}

	switch {
	case total == 0:
		return ErrValidation.Error()
	case total == 1:
		return first
	case total == 2:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, total-1)
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Message())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) fieldOrder() []string {
	if len(e.order) == len(e.Fields) {
		return e.order
	}
	// Fields was filled directly.
	order := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		order = append(order, field)
	}
	slices.Sort(order)
	return order
}

// attributeName turns an input name into the words used in messages:
// "number_of_days" and "numberOfDays" both become "number of days".
func attributeName(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case r == '_':
			b.WriteByte(' ')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewTypeError reports a body field whose JSON value has the wrong type or
// format.
func NewTypeError(field string) *ValidationError {
	verr := NewValidationError()
	verr.Add(field, fmt.Sprintf("The %s field has an invalid format.", attributeName(field)))
	return verr
}
