package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// SpecializationController handles specialization operations
type SpecializationController struct {
	specializationService services.SpecializationService
}

// NewSpecializationController creates a new SpecializationController
func NewSpecializationController(specializationService services.SpecializationService) *SpecializationController {
	return &SpecializationController{specializationService: specializationService}
}

// CreateSpecialization creates a new specialization under a field
// @Summary Create a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSpecializationRequest true "Specialization information"
// @Success 201 {object} dto.APIResponse "Specialization created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /specializations [post]
func (c *SpecializationController) CreateSpecialization(ctx *gin.Context) {
	var req dto.CreateSpecializationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	spec, err := c.specializationService.CreateSpecialization(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(spec, "Specialization created successfully"))
}

// GetSpecialization retrieves one specialization with its field
// @Summary Get specialization details
// @Tags specializations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Success 200 {object} dto.APIResponse "Specialization retrieved"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /specializations/{id} [get]
func (c *SpecializationController) GetSpecialization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	spec, err := c.specializationService.GetSpecializationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(spec, ""))
}

// ListSpecializations lists specializations, optionally filtered by field
// and paginated
// @Summary List specializations
// @Tags specializations
// @Produce json
// @Security BearerAuth
// @Param fieldId query int false "Restrict to one field"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Specializations retrieved"
// @Router /specializations [get]
func (c *SpecializationController) ListSpecializations(ctx *gin.Context) {
	fieldID, ok := parseOptionalIDQuery(ctx, "fieldId")
	if !ok {
		return
	}

	if ctx.Query("page") == "" {
		specs, _, err := c.specializationService.ListSpecializations(ctx.Request.Context(), fieldID, 0, 0)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(specs, ""))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	specs, total, err := c.specializationService.ListSpecializations(ctx.Request.Context(), fieldID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      specs,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateSpecialization partially updates a specialization
// @Summary Update a specialization
// @Tags specializations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Param request body dto.UpdateSpecializationRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Specialization updated"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /specializations/{id} [put]
func (c *SpecializationController) UpdateSpecialization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpecializationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	spec, err := c.specializationService.UpdateSpecialization(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(spec, "Specialization updated successfully"))
}

// DeleteSpecialization removes a specialization
// @Summary Delete a specialization
// @Tags specializations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Success 200 {object} dto.APIResponse "Specialization deleted"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /specializations/{id} [delete]
func (c *SpecializationController) DeleteSpecialization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.specializationService.DeleteSpecialization(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Specialization deleted successfully"))
}
