// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-travel-api/internal/config"
	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/mock"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/internal/utils"
	"github.com/MKhiriev/go-travel-api/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-travel-api-test"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

type fixedIDs []string

func (f *fixedIDs) Generate() string {
	id := (*f)[0]
	*f = (*f)[1:]
	return id
}

// newTestAuthSvc wires an authService to gomock repositories.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockTokenRepository) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)

	svc := NewAuthService(users, tokens, config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop()).(*authService)
	svc.idGenerator = &fixedIDs{"tok-1", "tok-2"}
	svc.now = func() time.Time { return testNow }

	return svc, users, tokens
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "secret", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
			u.UserID = 1
			return u, nil
		})

	created, err := svc.RegisterUser(context.Background(), models.User{
		Email: "admin@example.com", Password: "secret", Roles: []models.Role{models.RoleAdmin},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	tests := []models.User{
		{Password: "secret"},
		{Email: "a@example.com"},
		{Email: "a@example.com", Password: "secret", Roles: []models.Role{"owner"}},
	}
	for _, user := range tests {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "a@example.com", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	stored := models.User{UserID: 5, Email: "admin@example.com", Password: hashPassword(t, "secret")}
	users.EXPECT().FindUserByEmail(gomock.Any(), "admin@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Email: "admin@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 5, Password: hashPassword(t, "secret")}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "admin@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "x@example.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "x@example.com", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateToken_StoresRowAndSignsJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().CreateToken(gomock.Any(), models.AccessToken{ID: "tok-1", UserID: 5, Name: "curl/8.0"}).Return(nil)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 5}, "curl/8.0")

	require.NoError(t, err)
	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
	assert.Equal(t, "tok-1", parsed.TokenID)
}

func TestAuthService_CreateToken_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 5}, "cli")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	issued, err := utils.GenerateJWTToken(testIssuer, 5, "tok-1", 0, testSignKey)
	require.NoError(t, err)

	gomock.InOrder(
		tokens.EXPECT().FindToken(gomock.Any(), "tok-1").Return(models.AccessToken{ID: "tok-1", UserID: 5}, nil),
		tokens.EXPECT().TouchToken(gomock.Any(), "tok-1", testNow).Return(nil),
	)

	token, err := svc.ParseToken(context.Background(), issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(5), token.UserID)
}

func TestAuthService_ParseToken_TouchFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	issued, err := utils.GenerateJWTToken(testIssuer, 5, "tok-1", 0, testSignKey)
	require.NoError(t, err)

	tokens.EXPECT().FindToken(gomock.Any(), "tok-1").Return(models.AccessToken{ID: "tok-1", UserID: 5}, nil)
	tokens.EXPECT().TouchToken(gomock.Any(), "tok-1", gomock.Any()).Return(errors.New("db is read-only"))

	_, err = svc.ParseToken(context.Background(), issued.SignedString)

	assert.NoError(t, err)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken(testIssuer, 5, "tok-1", 0, "another-key")
	require.NoError(t, err)
	valid, err := utils.GenerateJWTToken(testIssuer, 5, "tok-1", 0, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		expect func(tokens *mock.MockTokenRepository)
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong signature", token: otherKey.SignedString},
		{
			name:  "revoked",
			token: valid.SignedString,
			expect: func(tokens *mock.MockTokenRepository) {
				tokens.EXPECT().FindToken(gomock.Any(), "tok-1").Return(models.AccessToken{}, store.ErrTokenNotFound)
			},
		},
		{
			name:  "row of another user",
			token: valid.SignedString,
			expect: func(tokens *mock.MockTokenRepository) {
				tokens.EXPECT().FindToken(gomock.Any(), "tok-1").Return(models.AccessToken{ID: "tok-1", UserID: 6}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, tokens := newTestAuthSvc(t, ctrl)
			if tt.expect != nil {
				tt.expect(tokens)
			}

			_, err := svc.ParseToken(context.Background(), tt.token)

			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ── CurrentUser / Authorize / RevokeToken ────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{UserID: 5}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(6)).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.CurrentUser(context.Background(), models.Token{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)

	_, err = svc.CurrentUser(context.Background(), models.Token{UserID: 6})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	admin := models.User{UserID: 1, Roles: []models.Role{models.RoleAdmin}}
	editor := models.User{UserID: 2, Roles: []models.Role{models.RoleEditor}}
	noRoles := models.User{UserID: 3}

	assert.NoError(t, svc.Authorize(ctx, admin, models.RoleAdmin))
	assert.NoError(t, svc.Authorize(ctx, editor, models.RoleAdmin, models.RoleEditor))
	assert.ErrorIs(t, svc.Authorize(ctx, editor, models.RoleAdmin), ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(ctx, noRoles, models.RoleAdmin, models.RoleEditor), ErrForbidden)
	assert.NoError(t, svc.Authorize(ctx, noRoles))
	assert.ErrorIs(t, svc.Authorize(ctx, models.User{}, models.RoleAdmin), ErrUnauthenticated)
}

func TestAuthService_RevokeToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().DeleteToken(gomock.Any(), "tok-1").Return(nil)
	tokens.EXPECT().DeleteToken(gomock.Any(), "tok-2").Return(store.ErrTokenNotFound)

	assert.NoError(t, svc.RevokeToken(context.Background(), models.Token{TokenID: "tok-1"}))
	assert.ErrorIs(t, svc.RevokeToken(context.Background(), models.Token{TokenID: "tok-2"}), ErrTokenIsExpiredOrInvalid)
}
