// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MaxDeviceNameLength is the longest device label stored with a token.
const MaxDeviceNameLength = 255

// Token wraps a JWT bearer credential with convenience accessors for
// authentication flows.
//
// The signed string is opaque to API clients. Server side, the "sub" claim
// carries the user ID and the "jti" claim references the [AccessToken] row
// that makes the credential revocable.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// TokenID is the access token row identifier extracted from the "jti" claim.
	TokenID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AccessToken is a persisted personal access token bound to one user and one
// device label.
type AccessToken struct {
	ID         string     `json:"id"`
	UserID     int64      `json:"user_id"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the AccessToken model.
func (a AccessToken) TableName() string {
	return "personal_access_tokens"
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// DeviceName derives the device label for a token from a User-Agent header,
// cutting it to [MaxDeviceNameLength] characters.
func DeviceName(userAgent string) string {
	runes := []rune(userAgent)
	if len(runes) > MaxDeviceNameLength {
		return string(runes[:MaxDeviceNameLength])
	}
	return userAgent
}
