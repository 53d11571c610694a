package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// ParentController handles parent profile operations
type ParentController struct {
	parentService services.ParentService
}

// NewParentController creates a new ParentController
func NewParentController(parentService services.ParentService) *ParentController {
	return &ParentController{parentService: parentService}
}

// AddParent creates a new parent account and profile
// @Summary Add a parent
// @Description Creates a new parent account with its profile
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateParentRequest true "Parent information"
// @Success 201 {object} dto.APIResponse "Parent created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /add-parent [post]
func (c *ParentController) AddParent(ctx *gin.Context) {
	var req dto.CreateParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	parent, err := c.parentService.CreateParent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(parent, "Parent added successfully"))
}

// GetParent retrieves one parent profile with its students
// @Summary Get parent details
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parent ID"
// @Success 200 {object} dto.APIResponse "Parent retrieved"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Router /parents/{id} [get]
func (c *ParentController) GetParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	parent, err := c.parentService.GetParentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(parent, ""))
}

// ListParentsPaginated lists parent profiles with search and pagination
// @Summary List parents with pagination
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, email and phone"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Parents retrieved"
// @Router /parents-paginated [get]
func (c *ParentController) ListParentsPaginated(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	parents, total, err := c.parentService.ListParents(ctx.Request.Context(), search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      parents,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// ListParents lists every parent profile
// @Summary List parents
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, email and phone"
// @Success 200 {object} dto.APIResponse "Parents retrieved"
// @Router /parents [get]
func (c *ParentController) ListParents(ctx *gin.Context) {
	search := ctx.Query("search")

	parents, _, err := c.parentService.ListParents(ctx.Request.Context(), search, 0, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(parents, ""))
}

// UpdateParent partially updates a parent profile and its account
// @Summary Update a parent
// @Tags parents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parent ID"
// @Param request body dto.UpdateParentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Parent updated"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Router /parents/{id} [put]
func (c *ParentController) UpdateParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateParentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	parent, err := c.parentService.UpdateParent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(parent, "Parent updated successfully"))
}

// DeleteParent removes a parent profile and its account
// @Summary Delete a parent
// @Tags parents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Parent ID"
// @Success 200 {object} dto.APIResponse "Parent deleted"
// @Failure 404 {object} dto.ErrorResponse "Parent not found"
// @Router /parents/{id} [delete]
func (c *ParentController) DeleteParent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.parentService.DeleteParent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Parent deleted successfully"))
}
