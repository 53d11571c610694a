package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/auth"
	"github.com/yassine/schoolhub/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// accountLookup is the credential lookup the login flow needs.
type accountLookup interface {
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	accountRepo accountLookup
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(accountRepo accountLookup, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Login verifies credentials and issues an access token. A wrong email and
// a wrong password are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.accountRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error generating access token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      account,
	}, nil
}
