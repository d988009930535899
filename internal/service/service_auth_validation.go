// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-api/internal/validators"
	"github.com/MKhiriev/go-travel-api/models"
)

// AuthValidationService checks login credentials before they reach the
// wrapped AuthService. Other calls pass through unchanged.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("error during credentials validation: %w", err)
	}

	return v.AuthService.Login(ctx, creds)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}
