package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
	"github.com/yassine/schoolhub/internal/db"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// AdminService defines the interface for admin profile operations
type AdminService interface {
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.AdminProfile, error)
	GetAdminByID(ctx context.Context, id int64) (*models.AdminProfile, error)
	ListAdmins(ctx context.Context, search string, page, size int) ([]*models.AdminProfile, int64, error)
	UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.AdminProfile, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	db          *db.PostgresDB
	accountRepo *repositories.AccountRepository
	adminRepo   *repositories.AdminRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(database *db.PostgresDB, accountRepo *repositories.AccountRepository, adminRepo *repositories.AdminRepository) AdminService {
	return &adminServiceImpl{
		db:          database,
		accountRepo: accountRepo,
		adminRepo:   adminRepo,
	}
}

// CreateAdmin creates the account and the admin profile in one transaction.
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.AdminProfile, error) {
	account, err := newAccountFromCreate(&req.AccountCreate, models.RoleAdmin)
	if err != nil {
		return nil, err
	}

	var profileID int64
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := s.accountRepo.CreateAccount(ctx, tx, account)
		if err != nil {
			return err
		}

		profileID, err = s.adminRepo.Create(ctx, tx, &models.AdminProfile{
			AccountID:   accountID,
			AdmissionNo: req.AdmissionNo,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.adminRepo.GetByID(ctx, profileID)
}

// GetAdminByID retrieves an admin profile with its account.
func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id int64) (*models.AdminProfile, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// ListAdmins retrieves admin profiles matching the search filter. A page of
// 0 disables pagination. The second return value is the matching total.
func (s *adminServiceImpl) ListAdmins(ctx context.Context, search string, page, size int) ([]*models.AdminProfile, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	admins, err := s.adminRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.adminRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// UpdateAdmin merges the provided fields into the stored profile and
// account, writing both in one transaction.
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.AdminProfile, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyAccountUpdate(admin.Account, &req.AccountUpdate); err != nil {
		return nil, err
	}
	if req.AdmissionNo != nil {
		admin.AdmissionNo = *req.AdmissionNo
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.accountRepo.UpdateAccount(ctx, tx, admin.Account); err != nil {
			return err
		}
		return s.adminRepo.Update(ctx, tx, admin)
	})
	if err != nil {
		return nil, err
	}

	return s.adminRepo.GetByID(ctx, id)
}

// DeleteAdmin removes the profile and its account in one transaction.
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.adminRepo.Delete(ctx, tx, admin.ID); err != nil {
			return err
		}
		return s.accountRepo.DeleteAccount(ctx, tx, admin.AccountID)
	})
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}

	return nil
}
