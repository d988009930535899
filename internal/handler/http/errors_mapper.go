// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-travel-api/internal/app"
	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/service"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/internal/validators"
)

// errorStatusMap is checked in order, so errors wrapping several sentinels
// resolve to the first listed one.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrMalformedJSON, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{validators.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrInvalidCredentials, http.StatusUnprocessableEntity},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrSlugGenerationFailed, http.StatusConflict},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrTravelNotFound, http.StatusNotFound},
	{store.ErrTokenNotFound, http.StatusUnauthorized},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrRoleNotFound, http.StatusUnprocessableEntity},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrSlugAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// errorMessageMap overrides the message sent for specific errors.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
}

// errorResponse is the body of every non-validation error.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse is the body of a 422 caused by invalid input.
type validationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}

	switch {
	case status == http.StatusUnauthorized:
		return app.MsgUnauthenticated
	case status == http.StatusForbidden:
		return app.MsgUnauthorized
	case status == http.StatusNotFound:
		return app.MsgNotFound
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError responds with the status mapped from err. Server errors are
// logged with their cause and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, validationErrorResponse{
			Message: verr.Message(),
			Errors:  verr.Fields,
		}, http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse{Error: messageFromError(err, status)}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, errorResponse{Error: messageFromError(nil, http.StatusNotFound)}, http.StatusNotFound)
}
