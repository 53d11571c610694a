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

// GroupService defines the interface for group operations
type GroupService interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error)
	GetGroupByID(ctx context.Context, id int64) (*models.Group, error)
	ListGroups(ctx context.Context, levelID int64, page, size int) ([]*models.Group, int64, error)
	UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// groupServiceImpl implements the GroupService interface
type groupServiceImpl struct {
	groupRepo *repositories.GroupRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo *repositories.GroupRepository) GroupService {
	return &groupServiceImpl{groupRepo: groupRepo}
}

// CreateGroup creates a new group under a level
func (s *groupServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.groupRepo.Create(ctx, &models.Group{Name: name, LevelID: req.LevelID})
	if err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, id)
}

// GetGroupByID retrieves a group by ID
func (s *groupServiceImpl) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// ListGroups retrieves groups, optionally restricted to one level. A page
// of 0 disables pagination. The second return value is the matching total.
func (s *groupServiceImpl) ListGroups(ctx context.Context, levelID int64, page, size int) ([]*models.Group, int64, error) {
	var offset uint64
	var limit int
	if page > 0 {
		offset, limit = helpers.CalculateOffsetLimit(page, size)
	}

	groups, err := s.groupRepo.List(ctx, levelID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.groupRepo.Count(ctx, levelID)
	if err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// UpdateGroup merges the provided fields into the stored row
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
		}
		group.Name = name
	}
	if req.LevelID != nil {
		group.LevelID = *req.LevelID
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, id)
}

// DeleteGroup removes a group
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id int64) error {
	return s.groupRepo.Delete(ctx, id)
}
