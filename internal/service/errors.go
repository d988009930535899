// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("the provided credentials are incorrect")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("this action is unauthorized")

	ErrSlugGenerationFailed = errors.New("could not generate a unique slug")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
