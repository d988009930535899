// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-travel-api/internal/service"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, store.ErrTokenNotFound), http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{validators.NewTypeError("price"), http.StatusUnprocessableEntity},
		{service.ErrInvalidCredentials, http.StatusUnprocessableEntity},
		{fmt.Errorf("lookup: %w", store.ErrTravelNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: %w", ErrMalformedJSON, errors.New("unexpected EOF")), http.StatusBadRequest},
		{store.ErrEmailAlreadyExists, http.StatusConflict},
		// a wrapped domain error wins over the infrastructure sentinel
		{fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrSlugAlreadyExists), http.StatusConflict},
		{fmt.Errorf("%w: %w", store.ErrScanningRows, errors.New("boom")), http.StatusInternalServerError},
		{errors.New("unmapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesServerErrorCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil),
		fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("password authentication failed for user")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestWriteError_ClientErrorKeepsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrEmailAlreadyExists)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already exists"}`, rec.Body.String())
}
