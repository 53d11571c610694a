package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// AdminController handles admin profile operations
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// RegisterAdmin creates a new admin account and profile
// @Summary Register an admin
// @Description Creates a new admin account with its profile
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAdminRequest true "Admin information"
// @Success 201 {object} dto.APIResponse "Admin created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /register-admin [post]
func (c *AdminController) RegisterAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(admin, "Admin registered successfully"))
}

// GetAdmin retrieves one admin profile
// @Summary Get admin details
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin retrieved"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdminByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin, ""))
}

// ListAdmins lists admin profiles with search and pagination
// @Summary List admins
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, email and phone"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Admins retrieved"
// @Router /admins [get]
func (c *AdminController) ListAdmins(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	admins, total, err := c.adminService.ListAdmins(ctx.Request.Context(), search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      admins,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateAdmin partially updates an admin profile and its account
// @Summary Update an admin
// @Tags admins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Admin updated"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	admin, err := c.adminService.UpdateAdmin(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin, "Admin updated successfully"))
}

// DeleteAdmin removes an admin profile and its account
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.APIResponse "Admin deleted"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Admin deleted successfully"))
}
