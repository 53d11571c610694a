package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yassine/schoolhub/internal/app/models"
	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

// CycleService defines the interface for cycle operations
type CycleService interface {
	CreateCycle(ctx context.Context, req *dto.CreateCycleRequest) (*models.Cycle, error)
	GetCycleByID(ctx context.Context, id int64) (*models.Cycle, error)
	ListCycles(ctx context.Context) ([]*models.Cycle, error)
	UpdateCycle(ctx context.Context, id int64, req *dto.UpdateCycleRequest) (*models.Cycle, error)
	DeleteCycle(ctx context.Context, id int64) error
}

// cycleServiceImpl implements the CycleService interface
type cycleServiceImpl struct {
	cycleRepo *repositories.CycleRepository
}

// NewCycleService creates a new cycle service instance
func NewCycleService(cycleRepo *repositories.CycleRepository) CycleService {
	return &cycleServiceImpl{cycleRepo: cycleRepo}
}

// CreateCycle creates a new cycle
func (s *cycleServiceImpl) CreateCycle(ctx context.Context, req *dto.CreateCycleRequest) (*models.Cycle, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	cycle := &models.Cycle{Name: name}
	id, err := s.cycleRepo.Create(ctx, cycle)
	if err != nil {
		return nil, err
	}
	cycle.ID = id

	return cycle, nil
}

// GetCycleByID retrieves a cycle by ID
func (s *cycleServiceImpl) GetCycleByID(ctx context.Context, id int64) (*models.Cycle, error) {
	return s.cycleRepo.GetByID(ctx, id)
}

// ListCycles retrieves all cycles
func (s *cycleServiceImpl) ListCycles(ctx context.Context) ([]*models.Cycle, error) {
	return s.cycleRepo.List(ctx)
}

// UpdateCycle merges the provided fields into the stored cycle
func (s *cycleServiceImpl) UpdateCycle(ctx context.Context, id int64, req *dto.UpdateCycleRequest) (*models.Cycle, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		cycle.Name = name
	}

	if err := s.cycleRepo.Update(ctx, cycle); err != nil {
		return nil, err
	}

	return cycle, nil
}

// DeleteCycle removes a cycle
func (s *cycleServiceImpl) DeleteCycle(ctx context.Context, id int64) error {
	return s.cycleRepo.Delete(ctx, id)
}
