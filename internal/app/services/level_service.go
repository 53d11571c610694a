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

// LevelService defines the interface for level operations
type LevelService interface {
	CreateLevel(ctx context.Context, req *dto.CreateLevelRequest) (*models.Level, error)
	GetLevelByID(ctx context.Context, id int64) (*models.Level, error)
	ListLevels(ctx context.Context, specializationID int64, page, size int) ([]*models.Level, int64, error)
	UpdateLevel(ctx context.Context, id int64, req *dto.UpdateLevelRequest) (*models.Level, error)
	DeleteLevel(ctx context.Context, id int64) error
}

// levelServiceImpl implements the LevelService interface
type levelServiceImpl struct {
	levelRepo *repositories.LevelRepository
}

// NewLevelService creates a new level service instance
func NewLevelService(levelRepo *repositories.LevelRepository) LevelService {
	return &levelServiceImpl{levelRepo: levelRepo}
}

// CreateLevel creates a new level under a specialization
func (s *levelServiceImpl) CreateLevel(ctx context.Context, req *dto.CreateLevelRequest) (*models.Level, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.levelRepo.Create(ctx, &models.Level{Name: name, SpecializationID: req.SpecializationID})
	if err != nil {
		return nil, err
	}

	return s.levelRepo.GetByID(ctx, id)
}

// GetLevelByID retrieves a level by ID
func (s *levelServiceImpl) GetLevelByID(ctx context.Context, id int64) (*models.Level, error) {
	return s.levelRepo.GetByID(ctx, id)
}

// ListLevels retrieves levels, optionally restricted to one specialization.
// A page of 0 disables pagination. The second return value is the matching
// total.
func (s *levelServiceImpl) ListLevels(ctx context.Context, specializationID int64, page, size int) ([]*models.Level, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	levels, err := s.levelRepo.List(ctx, specializationID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.levelRepo.Count(ctx, specializationID)
	if err != nil {
		return nil, 0, err
	}

	return levels, total, nil
}

// UpdateLevel merges the provided fields into the stored row
func (s *levelServiceImpl) UpdateLevel(ctx context.Context, id int64, req *dto.UpdateLevelRequest) (*models.Level, error) {
	level, err := s.levelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		level.Name = name
	}
	if req.SpecializationID != nil {
		level.SpecializationID = *req.SpecializationID
	}

	if err := s.levelRepo.Update(ctx, level); err != nil {
		return nil, err
	}

	return s.levelRepo.GetByID(ctx, id)
}

// DeleteLevel removes a level
func (s *levelServiceImpl) DeleteLevel(ctx context.Context, id int64) error {
	return s.levelRepo.Delete(ctx, id)
}
