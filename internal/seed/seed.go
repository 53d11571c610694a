package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/repositories"
	"github.com/yassine/schoolhub/internal/config"
	"github.com/yassine/schoolhub/internal/db"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/auth"
	"github.com/yassine/schoolhub/internal/pkg/validation"
)

const defaultAdminAdmissionNo = "ADM-0001"

// CreateDefaultData creates the bootstrap administrator account when none
// exists yet, so a fresh deployment can always log in.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := repositories.NewAccountRepository(dbPool)
	adminRepo := repositories.NewAdminRepository(dbPool)

	email := cfg.Seed.AdminEmail
	if email == "" || cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("Seed admin credentials not configured, skipping default admin creation")
		return nil
	}
	if !validation.IsValidEmail(email) {
		return fmt.Errorf("seed admin email %q is not a valid address", email)
	}
	if len(cfg.Seed.AdminPassword) < validation.PasswordMinLength {
		return fmt.Errorf("seed admin password must be at least %d characters", validation.PasswordMinLength)
	}

	_, err := accountRepo.GetAccountByEmail(ctx, email)
	if err == nil {
		lgr.Info().Str("email", email).Msg("Default admin already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Creating default admin account...")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	account := &models.Account{
		Name:     "System Administrator",
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	database := &db.PostgresDB{Pool: dbPool}
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := accountRepo.CreateAccount(ctx, tx, account)
		if err != nil {
			return err
		}

		_, err = adminRepo.Create(ctx, tx, &models.AdminProfile{
			AccountID:   accountID,
			AdmissionNo: defaultAdminAdmissionNo,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
