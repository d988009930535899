// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// AuthService.ParseToken, resolves its owner with AuthService.CurrentUser
// and stores both in the request context
// ([utils.WithToken], [utils.WithUser]) before delegating to the next handler.
//
// Requests are rejected with 401 when the header is absent or malformed, or
// when the token is invalid, expired or revoked.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Str("func", "*Handler.auth").Msg(ErrEmptyAuthorizationHeader.Error())
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithToken(ctx, token)
		ctx = utils.WithUser(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRoles lets the request through when the authenticated user holds at
// least one of roles. It must run after [Handler.auth].
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, _ := utils.GetUserFromContext(r.Context())

			if err := h.services.AuthService.Authorize(r.Context(), user, roles...); err != nil {
				logger.FromRequest(r).Debug().
					Str("func", "*Handler.requireRoles").
					Int64("user_id", user.UserID).
					Msg("access denied")
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
