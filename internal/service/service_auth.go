// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-travel-api/internal/config"
	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes and issues JWT bearer tokens, each
// backed by a personal access token row so that it can be revoked.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository stores one row per issued token. A JWT whose row is
	// gone is rejected.
	tokenRepository store.TokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost used by RegisterUser.
	passwordHashCost int

	idGenerator utils.IDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:   userRepository,
		tokenRepository:  tokenRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cost,
		idGenerator:      utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty or a role is unknown.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	for _, role := range user.Roles {
		if !role.IsKnown() {
			return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, role)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.passwordHashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	user.Password = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(creds.Password)); err != nil {
		log.Debug().Str("func", "*authService.Login").Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for user and records it as a personal
// access token named name. The token's "jti" claim is the row ID.
func (a *authService) CreateToken(ctx context.Context, user models.User, name string) (models.Token, error) {
	tokenID := a.idGenerator.Generate()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, tokenID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.tokenRepository.CreateToken(ctx, models.AccessToken{
		ID:     tokenID,
		UserID: user.UserID,
		Name:   name,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Int64("user_id", user.UserID).Msg("error saving token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string: signature, issuer, expiry, and that
// its access token row still exists. The row's last_used_at is refreshed.
//
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.ParseToken").Msg("rejected token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	accessToken, err := a.tokenRepository.FindToken(ctx, token.TokenID)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("token lookup failed: %w", err)
	}
	if accessToken.UserID != token.UserID {
		log.Warn().Str("func", "*authService.ParseToken").Str("token_id", token.TokenID).Msg("token subject mismatch")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if err := a.tokenRepository.TouchToken(ctx, token.TokenID, a.now()); err != nil {
		log.Warn().Err(err).Str("func", "*authService.ParseToken").Msg("could not record token use")
	}

	return token, nil
}

// CurrentUser loads the user the token was issued to.
func (a *authService) CurrentUser(ctx context.Context, token models.Token) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// Authorize allows user when it holds at least one of roles. With no roles
// given any authenticated user is allowed.
func (a *authService) Authorize(ctx context.Context, user models.User, roles ...models.Role) error {
	if user.UserID == 0 {
		return ErrUnauthenticated
	}
	if len(roles) == 0 || user.HasAnyRole(roles...) {
		return nil
	}

	logger.FromContext(ctx).Info().
		Str("func", "*authService.Authorize").
		Int64("user_id", user.UserID).
		Msg("missing required role")
	return ErrForbidden
}

func (a *authService) RevokeToken(ctx context.Context, token models.Token) error {
	err := a.tokenRepository.DeleteToken(ctx, token.TokenID)
	if errors.Is(err, store.ErrTokenNotFound) {
		return ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return fmt.Errorf("token revocation failed: %w", err)
	}
	return nil
}
