package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// GroupController handles class group operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// CreateGroup creates a new group under a level
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Group information"
// @Success 201 {object} dto.APIResponse "Group created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group, err := c.groupService.CreateGroup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(group, "Group created successfully"))
}

// GetGroup retrieves one group with its level
// @Summary Get group details
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse "Group retrieved"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.groupService.GetGroupByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group, ""))
}

// ListGroups lists groups, optionally filtered by level and paginated
// @Summary List groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param levelId query int false "Restrict to one level"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Groups retrieved"
// @Router /groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	levelID, ok := parseOptionalIDQuery(ctx, "levelId")
	if !ok {
		return
	}

	if ctx.Query("page") == "" {
		groups, _, err := c.groupService.ListGroups(ctx.Request.Context(), levelID, 0, 0)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(groups, ""))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	groups, total, err := c.groupService.ListGroups(ctx.Request.Context(), levelID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      groups,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateGroup partially updates a group
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Group updated"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	group, err := c.groupService.UpdateGroup(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group, "Group updated successfully"))
}

// DeleteGroup removes a group
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse "Group deleted"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.groupService.DeleteGroup(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Group deleted successfully"))
}
