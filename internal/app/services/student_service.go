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

// StudentService defines the interface for student profile operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.StudentProfile, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentProfile, error)
	ListStudents(ctx context.Context, filter *dto.StudentFilterRequest, page, size int) ([]*models.StudentProfile, int64, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.StudentProfile, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	db          *db.PostgresDB
	accountRepo *repositories.AccountRepository
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(database *db.PostgresDB, accountRepo *repositories.AccountRepository, studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		db:          database,
		accountRepo: accountRepo,
		studentRepo: studentRepo,
	}
}

// CreateStudent creates the account and the student profile in one
// transaction. Dangling group or parent references surface as validation
// failures through the FK checks.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.StudentProfile, error) {
	account, err := newAccountFromCreate(&req.AccountCreate, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	var profileID int64
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := s.accountRepo.CreateAccount(ctx, tx, account)
		if err != nil {
			return err
		}

		profileID, err = s.studentRepo.Create(ctx, tx, &models.StudentProfile{
			AccountID:   accountID,
			AdmissionNo: req.AdmissionNo,
			Status:      models.StudentStatus(req.Status),
			GroupID:     req.GroupID,
			ParentID:    req.ParentID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, profileID)
}

// GetStudentByID retrieves a student profile with account, group and
// parent.
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.StudentProfile, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves student profiles matching the filter's search and
// hierarchy ancestor. A page of 0 disables pagination. The second return
// value is the matching total.
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter *dto.StudentFilterRequest, page, size int) ([]*models.StudentProfile, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	students, err := s.studentRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.studentRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// UpdateStudent merges the provided fields into the stored profile and
// account, writing both in one transaction.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.StudentProfile, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyAccountUpdate(student.Account, &req.AccountUpdate); err != nil {
		return nil, err
	}
	if req.AdmissionNo != nil {
		student.AdmissionNo = *req.AdmissionNo
	}
	if req.Status != nil {
		student.Status = models.StudentStatus(*req.Status)
	}
	if req.GroupID != nil {
		student.GroupID = *req.GroupID
	}
	if req.ParentID != nil {
		student.ParentID = req.ParentID
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.accountRepo.UpdateAccount(ctx, tx, student.Account); err != nil {
			return err
		}
		return s.studentRepo.Update(ctx, tx, student)
	})
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent removes the profile and its account in one transaction.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.Delete(ctx, tx, student.ID); err != nil {
			return err
		}
		return s.accountRepo.DeleteAccount(ctx, tx, student.AccountID)
	})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}
