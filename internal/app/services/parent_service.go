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

// ParentService defines the interface for parent profile operations
type ParentService interface {
	CreateParent(ctx context.Context, req *dto.CreateParentRequest) (*models.ParentProfile, error)
	GetParentByID(ctx context.Context, id int64) (*models.ParentProfile, error)
	ListParents(ctx context.Context, search string, page, size int) ([]*models.ParentProfile, int64, error)
	UpdateParent(ctx context.Context, id int64, req *dto.UpdateParentRequest) (*models.ParentProfile, error)
	DeleteParent(ctx context.Context, id int64) error
}

// parentServiceImpl implements the ParentService interface
type parentServiceImpl struct {
	db          *db.PostgresDB
	accountRepo *repositories.AccountRepository
	parentRepo  *repositories.ParentRepository
}

// NewParentService creates a new parent service instance
func NewParentService(database *db.PostgresDB, accountRepo *repositories.AccountRepository, parentRepo *repositories.ParentRepository) ParentService {
	return &parentServiceImpl{
		db:          database,
		accountRepo: accountRepo,
		parentRepo:  parentRepo,
	}
}

// CreateParent creates the account and the parent profile in one
// transaction.
func (s *parentServiceImpl) CreateParent(ctx context.Context, req *dto.CreateParentRequest) (*models.ParentProfile, error) {
	account, err := newAccountFromCreate(&req.AccountCreate, models.RoleParent)
	if err != nil {
		return nil, err
	}

	var profileID int64
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := s.accountRepo.CreateAccount(ctx, tx, account)
		if err != nil {
			return err
		}

		profileID, err = s.parentRepo.Create(ctx, tx, &models.ParentProfile{
			AccountID:   accountID,
			AdmissionNo: req.AdmissionNo,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.GetParentByID(ctx, profileID)
}

// GetParentByID retrieves a parent profile with account and students.
func (s *parentServiceImpl) GetParentByID(ctx context.Context, id int64) (*models.ParentProfile, error) {
	parent, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.parentRepo.GetStudents(ctx, id)
	if err != nil {
		return nil, err
	}
	parent.Students = students

	return parent, nil
}

// ListParents retrieves parent profiles matching the search filter. A page
// of 0 disables pagination. The second return value is the matching total.
func (s *parentServiceImpl) ListParents(ctx context.Context, search string, page, size int) ([]*models.ParentProfile, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	parents, err := s.parentRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.parentRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return parents, total, nil
}

// UpdateParent merges the provided fields into the stored profile and
// account, writing both in one transaction.
func (s *parentServiceImpl) UpdateParent(ctx context.Context, id int64, req *dto.UpdateParentRequest) (*models.ParentProfile, error) {
	parent, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyAccountUpdate(parent.Account, &req.AccountUpdate); err != nil {
		return nil, err
	}
	if req.AdmissionNo != nil {
		parent.AdmissionNo = *req.AdmissionNo
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.accountRepo.UpdateAccount(ctx, tx, parent.Account); err != nil {
			return err
		}
		return s.parentRepo.Update(ctx, tx, parent)
	})
	if err != nil {
		return nil, err
	}

	return s.GetParentByID(ctx, id)
}

// DeleteParent removes the profile and its account in one transaction.
// A parent still linked to students is refused.
func (s *parentServiceImpl) DeleteParent(ctx context.Context, id int64) error {
	parent, err := s.parentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.parentRepo.Delete(ctx, tx, parent.ID); err != nil {
			return err
		}
		return s.accountRepo.DeleteAccount(ctx, tx, parent.AccountID)
	})
	if err != nil {
		return fmt.Errorf("error deleting parent: %w", err)
	}

	return nil
}
