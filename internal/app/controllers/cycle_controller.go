package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
)

// CycleController handles cycle operations
type CycleController struct {
	cycleService services.CycleService
}

// NewCycleController creates a new CycleController
func NewCycleController(cycleService services.CycleService) *CycleController {
	return &CycleController{cycleService: cycleService}
}

// CreateCycle creates a new cycle
// @Summary Create a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCycleRequest true "Cycle information"
// @Success 201 {object} dto.APIResponse "Cycle created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /cycles [post]
func (c *CycleController) CreateCycle(ctx *gin.Context) {
	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	cycle, err := c.cycleService.CreateCycle(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(cycle, "Cycle created successfully"))
}

// GetCycle retrieves one cycle
// @Summary Get cycle details
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse "Cycle retrieved"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Router /cycles/{id} [get]
func (c *CycleController) GetCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cycle, err := c.cycleService.GetCycleByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cycle, ""))
}

// ListCycles lists every cycle
// @Summary List cycles
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Cycles retrieved"
// @Router /cycles [get]
func (c *CycleController) ListCycles(ctx *gin.Context) {
	cycles, err := c.cycleService.ListCycles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cycles, ""))
}

// UpdateCycle partially updates a cycle
// @Summary Update a cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Param request body dto.UpdateCycleRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Cycle updated"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Router /cycles/{id} [put]
func (c *CycleController) UpdateCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	cycle, err := c.cycleService.UpdateCycle(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cycle, "Cycle updated successfully"))
}

// DeleteCycle removes a cycle
// @Summary Delete a cycle
// @Tags cycles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse "Cycle deleted"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Router /cycles/{id} [delete]
func (c *CycleController) DeleteCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.cycleService.DeleteCycle(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Cycle deleted successfully"))
}
