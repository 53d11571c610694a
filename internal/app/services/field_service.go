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

// FieldService defines the interface for field operations
type FieldService interface {
	CreateField(ctx context.Context, req *dto.CreateFieldRequest) (*models.Field, error)
	GetFieldByID(ctx context.Context, id int64) (*models.Field, error)
	ListFields(ctx context.Context, cycleID int64, page, size int) ([]*models.Field, int64, error)
	UpdateField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) (*models.Field, error)
	DeleteField(ctx context.Context, id int64) error
}

// fieldServiceImpl implements the FieldService interface
type fieldServiceImpl struct {
	fieldRepo *repositories.FieldRepository
}

// NewFieldService creates a new field service instance
func NewFieldService(fieldRepo *repositories.FieldRepository) FieldService {
	return &fieldServiceImpl{fieldRepo: fieldRepo}
}

// CreateField creates a new field under a cycle
func (s *fieldServiceImpl) CreateField(ctx context.Context, req *dto.CreateFieldRequest) (*models.Field, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.fieldRepo.Create(ctx, &models.Field{Name: name, CycleID: req.CycleID})
	if err != nil {
		return nil, err
	}

	return s.fieldRepo.GetByID(ctx, id)
}

// GetFieldByID retrieves a field by ID
func (s *fieldServiceImpl) GetFieldByID(ctx context.Context, id int64) (*models.Field, error) {
	return s.fieldRepo.GetByID(ctx, id)
}

// ListFields retrieves fields, optionally restricted to one cycle. A page
// of 0 disables pagination. The second return value is the matching total.
func (s *fieldServiceImpl) ListFields(ctx context.Context, cycleID int64, page, size int) ([]*models.Field, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	fields, err := s.fieldRepo.List(ctx, cycleID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.fieldRepo.Count(ctx, cycleID)
	if err != nil {
		return nil, 0, err
	}

	return fields, total, nil
}

// UpdateField merges the provided fields into the stored row
func (s *fieldServiceImpl) UpdateField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) (*models.Field, error) {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		field.Name = name
	}
	if req.CycleID != nil {
		field.CycleID = *req.CycleID
	}

	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, err
	}

	return s.fieldRepo.GetByID(ctx, id)
}

// DeleteField removes a field
func (s *fieldServiceImpl) DeleteField(ctx context.Context, id int64) error {
	return s.fieldRepo.Delete(ctx, id)
}
