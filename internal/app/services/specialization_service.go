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

// SpecializationService defines the interface for specialization operations
type SpecializationService interface {
	CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*models.Specialization, error)
	GetSpecializationByID(ctx context.Context, id int64) (*models.Specialization, error)
	ListSpecializations(ctx context.Context, fieldID int64, page, size int) ([]*models.Specialization, int64, error)
	UpdateSpecialization(ctx context.Context, id int64, req *dto.UpdateSpecializationRequest) (*models.Specialization, error)
	DeleteSpecialization(ctx context.Context, id int64) error
}

// specializationServiceImpl implements the SpecializationService interface
type specializationServiceImpl struct {
	specializationRepo *repositories.SpecializationRepository
}

// NewSpecializationService creates a new specialization service instance
func NewSpecializationService(specializationRepo *repositories.SpecializationRepository) SpecializationService {
	return &specializationServiceImpl{specializationRepo: specializationRepo}
}

// CreateSpecialization creates a new specialization under a field
func (s *specializationServiceImpl) CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*models.Specialization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.specializationRepo.Create(ctx, &models.Specialization{Name: name, FieldID: req.FieldID})
	if err != nil {
		return nil, err
	}

	return s.specializationRepo.GetByID(ctx, id)
}

// GetSpecializationByID retrieves a specialization by ID
func (s *specializationServiceImpl) GetSpecializationByID(ctx context.Context, id int64) (*models.Specialization, error) {
	return s.specializationRepo.GetByID(ctx, id)
}

// ListSpecializations retrieves specializations, optionally restricted to
// one field. A page of 0 disables pagination. The second return value is
// the matching total.
func (s *specializationServiceImpl) ListSpecializations(ctx context.Context, fieldID int64, page, size int) ([]*models.Specialization, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	specs, err := s.specializationRepo.List(ctx, fieldID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.specializationRepo.Count(ctx, fieldID)
	if err != nil {
		return nil, 0, err
	}

	return specs, total, nil
}

// UpdateSpecialization merges the provided fields into the stored row
func (s *specializationServiceImpl) UpdateSpecialization(ctx context.Context, id int64, req *dto.UpdateSpecializationRequest) (*models.Specialization, error) {
	spec, err := s.specializationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		spec.Name = name
	}
	if req.FieldID != nil {
		spec.FieldID = *req.FieldID
	}

	if err := s.specializationRepo.Update(ctx, spec); err != nil {
		return nil, err
	}

	return s.specializationRepo.GetByID(ctx, id)
}

// DeleteSpecialization removes a specialization
func (s *specializationServiceImpl) DeleteSpecialization(ctx context.Context, id int64) error {
	return s.specializationRepo.Delete(ctx, id)
}
