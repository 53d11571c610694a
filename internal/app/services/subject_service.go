package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	ListSubjects(ctx context.Context, levelID int64, page, size int) ([]*models.Subject, int64, error)
	ListSubjectTeachers(ctx context.Context, subjectID int64) ([]*models.TeacherProfile, error)
	UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	teacherRepo *repositories.TeacherRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository, teacherRepo *repositories.TeacherRepository) SubjectService {
	return &subjectServiceImpl{subjectRepo: subjectRepo, teacherRepo: teacherRepo}
}

// CreateSubject creates a new subject under a level
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.subjectRepo.Create(ctx, &models.Subject{Name: name, LevelID: req.LevelID})
	if err != nil {
		return nil, err
	}

	return s.subjectRepo.GetByID(ctx, id)
}

// GetSubjectByID retrieves a subject by ID
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// ListSubjects retrieves subjects, optionally restricted to one level. A
// page of 0 disables pagination. The second return value is the matching
// total.
func (s *subjectServiceImpl) ListSubjects(ctx context.Context, levelID int64, page, size int) ([]*models.Subject, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	subjects, err := s.subjectRepo.List(ctx, levelID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.subjectRepo.Count(ctx, levelID)
	if err != nil {
		return nil, 0, err
	}

	return subjects, total, nil
}

// ListSubjectTeachers retrieves the teachers assigned to a subject.
func (s *subjectServiceImpl) ListSubjectTeachers(ctx context.Context, subjectID int64) ([]*models.TeacherProfile, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	return s.teacherRepo.ListBySubject(ctx, subjectID)
}

// UpdateSubject merges the provided fields into the stored row
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		subject.Name = name
	}
	if req.LevelID != nil {
		subject.LevelID = *req.LevelID
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}

	return s.subjectRepo.GetByID(ctx, id)
}

// DeleteSubject removes a subject
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}
