package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// LevelController handles level operations
type LevelController struct {
	levelService services.LevelService
}

// NewLevelController creates a new LevelController
func NewLevelController(levelService services.LevelService) *LevelController {
	return &LevelController{levelService: levelService}
}

// CreateLevel creates a new level under a specialization
// @Summary Create a level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLevelRequest true "Level information"
// @Success 201 {object} dto.APIResponse "Level created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /levels [post]
func (c *LevelController) CreateLevel(ctx *gin.Context) {
	var req dto.CreateLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	level, err := c.levelService.CreateLevel(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(level, "Level created successfully"))
}

// GetLevel retrieves one level with its specialization
// @Summary Get level details
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Success 200 {object} dto.APIResponse "Level retrieved"
// @Failure 404 {object} dto.ErrorResponse "Level not found"
// @Router /levels/{id} [get]
func (c *LevelController) GetLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	level, err := c.levelService.GetLevelByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(level, ""))
}

// ListLevels lists levels, optionally filtered by specialization and paginated
// @Summary List levels
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param specializationId query int false "Restrict to one specialization"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Levels retrieved"
// @Router /levels [get]
func (c *LevelController) ListLevels(ctx *gin.Context) {
	specializationID, ok := parseOptionalIDQuery(ctx, "specializationId")
	if !ok {
		return
	}

	if ctx.Query("page") == "" {
		levels, _, err := c.levelService.ListLevels(ctx.Request.Context(), specializationID, 0, 0)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(levels, ""))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	levels, total, err := c.levelService.ListLevels(ctx.Request.Context(), specializationID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      levels,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// ListLevelsBySpecialization lists every level of one specialization
// @Summary List levels of a specialization
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Success 200 {object} dto.APIResponse "Levels retrieved"
// @Router /levels/specialization/{id} [get]
func (c *LevelController) ListLevelsBySpecialization(ctx *gin.Context) {
	specializationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	levels, _, err := c.levelService.ListLevels(ctx.Request.Context(), specializationID, 0, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(levels, ""))
}

// ListLevelsPaginated lists levels one page at a time
// @Summary List levels with pagination
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Levels retrieved"
// @Router /levels-paginated [get]
func (c *LevelController) ListLevelsPaginated(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	levels, total, err := c.levelService.ListLevels(ctx.Request.Context(), 0, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      levels,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateLevel partially updates a level
// @Summary Update a level
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Param request body dto.UpdateLevelRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Level updated"
// @Failure 404 {object} dto.ErrorResponse "Level not found"
// @Router /levels/{id} [put]
func (c *LevelController) UpdateLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	level, err := c.levelService.UpdateLevel(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(level, "Level updated successfully"))
}

// DeleteLevel removes a level
// @Summary Delete a level
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Level ID"
// @Success 200 {object} dto.APIResponse "Level deleted"
// @Failure 404 {object} dto.ErrorResponse "Level not found"
// @Router /levels/{id} [delete]
func (c *LevelController) DeleteLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.levelService.DeleteLevel(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Level deleted successfully"))
}
