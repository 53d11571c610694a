package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// FieldController handles field operations
type FieldController struct {
	fieldService services.FieldService
}

// NewFieldController creates a new FieldController
func NewFieldController(fieldService services.FieldService) *FieldController {
	return &FieldController{fieldService: fieldService}
}

// CreateField creates a new field under a cycle
// @Summary Create a field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFieldRequest true "Field information"
// @Success 201 {object} dto.APIResponse "Field created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /fields [post]
func (c *FieldController) CreateField(ctx *gin.Context) {
	var req dto.CreateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	field, err := c.fieldService.CreateField(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(field, "Field created successfully"))
}

// GetField retrieves one field with its cycle
// @Summary Get field details
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path int true "Field ID"
// @Success 200 {object} dto.APIResponse "Field retrieved"
// @Failure 404 {object} dto.ErrorResponse "Field not found"
// @Router /fields/{id} [get]
func (c *FieldController) GetField(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	field, err := c.fieldService.GetFieldByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(field, ""))
}

// ListFields lists fields, optionally filtered by cycle and paginated
// @Summary List fields
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param cycleId query int false "Restrict to one cycle"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Fields retrieved"
// @Router /fields [get]
func (c *FieldController) ListFields(ctx *gin.Context) {
	cycleID, ok := parseOptionalIDQuery(ctx, "cycleId")
	if !ok {
		return
	}

	if ctx.Query("page") == "" {
		fields, _, err := c.fieldService.ListFields(ctx.Request.Context(), cycleID, 0, 0)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(fields, ""))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	fields, total, err := c.fieldService.ListFields(ctx.Request.Context(), cycleID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      fields,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateField partially updates a field
// @Summary Update a field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Field ID"
// @Param request body dto.UpdateFieldRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Field updated"
// @Failure 404 {object} dto.ErrorResponse "Field not found"
// @Router /fields/{id} [put]
func (c *FieldController) UpdateField(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	field, err := c.fieldService.UpdateField(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(field, "Field updated successfully"))
}

// DeleteField removes a field
// @Summary Delete a field
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path int true "Field ID"
// @Success 200 {object} dto.APIResponse "Field deleted"
// @Failure 404 {object} dto.ErrorResponse "Field not found"
// @Router /fields/{id} [delete]
func (c *FieldController) DeleteField(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.fieldService.DeleteField(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Field deleted successfully"))
}
