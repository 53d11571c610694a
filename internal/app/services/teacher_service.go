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

// TeacherService defines the interface for teacher profile operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.TeacherProfile, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.TeacherProfile, error)
	ListTeachers(ctx context.Context, search string, page, size int) ([]*models.TeacherProfile, int64, error)
	UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.TeacherProfile, error)
	DeleteTeacher(ctx context.Context, id int64) error
	AssignSubjects(ctx context.Context, id int64, req *dto.AssignSubjectsRequest) (*models.TeacherProfile, error)
	CountTeachers(ctx context.Context) (int64, error)
}

// transactor runs a function inside one database transaction.
type transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// accountStore is the account persistence side of the profile services.
type accountStore interface {
	CreateAccount(ctx context.Context, q repositories.DBTX, account *models.Account) (int64, error)
	UpdateAccount(ctx context.Context, q repositories.DBTX, account *models.Account) error
	DeleteAccount(ctx context.Context, q repositories.DBTX, id int64) error
}

// teacherStore is the teacher profile persistence.
type teacherStore interface {
	Create(ctx context.Context, q repositories.DBTX, profile *models.TeacherProfile) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TeacherProfile, error)
	List(ctx context.Context, search string, offset uint64, limit int) ([]*models.TeacherProfile, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, q repositories.DBTX, profile *models.TeacherProfile) error
	Delete(ctx context.Context, q repositories.DBTX, id int64) error
	AssignSubjects(ctx context.Context, teacherID int64, subjectIDs []int64) error
	GetSubjects(ctx context.Context, teacherID int64) ([]models.Subject, error)
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	db          transactor
	accountRepo accountStore
	teacherRepo teacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(database transactor, accountRepo accountStore, teacherRepo teacherStore) TeacherService {
	return &teacherServiceImpl{
		db:          database,
		accountRepo: accountRepo,
		teacherRepo: teacherRepo,
	}
}

// CreateTeacher creates the account and the teacher profile in one
// transaction.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.TeacherProfile, error) {
	account, err := newAccountFromCreate(&req.AccountCreate, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	var profileID int64
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := s.accountRepo.CreateAccount(ctx, tx, account)
		if err != nil {
			return err
		}

		profileID, err = s.teacherRepo.Create(ctx, tx, &models.TeacherProfile{
			AccountID:   accountID,
			AdmissionNo: req.AdmissionNo,
			Status:      models.TeacherStatus(req.Status),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.getWithSubjects(ctx, profileID)
}

// GetTeacherByID retrieves a teacher profile with account and subjects.
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	return s.getWithSubjects(ctx, id)
}

func (s *teacherServiceImpl) getWithSubjects(ctx context.Context, id int64) (*models.TeacherProfile, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subjects, err := s.teacherRepo.GetSubjects(ctx, id)
	if err != nil {
		return nil, err
	}
	teacher.Subjects = subjects

	return teacher, nil
}

// ListTeachers retrieves teacher profiles matching the search filter. A
// page of 0 disables pagination. The second return value is the matching
// total.
func (s *teacherServiceImpl) ListTeachers(ctx context.Context, search string, page, size int) ([]*models.TeacherProfile, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	teachers, err := s.teacherRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.teacherRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	return teachers, total, nil
}

// UpdateTeacher merges the provided fields into the stored profile and
// account, writing both in one transaction.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*models.TeacherProfile, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyAccountUpdate(teacher.Account, &req.AccountUpdate); err != nil {
		return nil, err
	}
	if req.AdmissionNo != nil {
		teacher.AdmissionNo = *req.AdmissionNo
	}
	if req.Status != nil {
		teacher.Status = models.TeacherStatus(*req.Status)
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.accountRepo.UpdateAccount(ctx, tx, teacher.Account); err != nil {
			return err
		}
		return s.teacherRepo.Update(ctx, tx, teacher)
	})
	if err != nil {
		return nil, err
	}

	return s.getWithSubjects(ctx, id)
}

// DeleteTeacher removes the profile and its account in one transaction.
// Subject assignments go with the profile through the cascade.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.teacherRepo.Delete(ctx, tx, teacher.ID); err != nil {
			return err
		}
		return s.accountRepo.DeleteAccount(ctx, tx, teacher.AccountID)
	})
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	return nil
}

// AssignSubjects links the subjects to the teacher, skipping links that
// already exist, and returns the refreshed profile.
func (s *teacherServiceImpl) AssignSubjects(ctx context.Context, id int64, req *dto.AssignSubjectsRequest) (*models.TeacherProfile, error) {
	if _, err := s.teacherRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.teacherRepo.AssignSubjects(ctx, id, req.SubjectIDs); err != nil {
		return nil, err
	}

	return s.getWithSubjects(ctx, id)
}

// CountTeachers counts every teacher profile.
func (s *teacherServiceImpl) CountTeachers(ctx context.Context) (int64, error) {
	return s.teacherRepo.Count(ctx, "")
}
