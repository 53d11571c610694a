package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/auth"
)

type fakeAccountLookup struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountLookup) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func newLoginFixture(t *testing.T) AuthService {
	t.Helper()

	hashed, err := auth.HashPassword("Secret123!")
	require.NoError(t, err)

	lookup := &fakeAccountLookup{accounts: map[string]*models.Account{
		"amina@schoolhub.app": {
			ID:       5,
			Name:     "Amina",
			Email:    "amina@schoolhub.app",
			Password: hashed,
			Role:     models.RoleAdmin,
		},
	}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "login-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "schoolhub.app",
	})
	return NewAuthService(lookup, jwtService)
}

func TestLogin(t *testing.T) {
	svc := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "amina@schoolhub.app",
		Password: "Secret123!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, int64(5), resp.User.ID)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "login-test-secret"})
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.AccountID)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "amina@schoolhub.app",
		Password: "NotTheSecret",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@schoolhub.app",
		Password: "Secret123!",
	})

	// Unknown emails and wrong passwords are indistinguishable.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, apperrors.ErrAccountNotFound)
}
