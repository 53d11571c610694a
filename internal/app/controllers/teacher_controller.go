package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// TeacherController handles teacher profile operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// AddTeacher creates a new teacher account and profile
// @Summary Add a teacher
// @Description Creates a new teacher account with its profile
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse "Teacher created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /add-teacher [post]
func (c *TeacherController) AddTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(teacher, "Teacher added successfully"))
}

// GetTeacher retrieves one teacher profile with its subjects
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse "Teacher retrieved"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teacher, ""))
}

// ListTeachers lists teacher profiles with search and pagination
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, email and phone"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Teachers retrieved"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	teachers, total, err := c.teacherService.ListTeachers(ctx.Request.Context(), search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      teachers,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateTeacher partially updates a teacher profile and its account
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Teacher updated"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teacher, "Teacher updated successfully"))
}

// DeleteTeacher removes a teacher profile and its account
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse "Teacher deleted"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Teacher deleted successfully"))
}

// AssignSubjects links subjects to a teacher
// @Summary Assign subjects to a teacher
// @Description Adds teacher-subject links; links that already exist are kept
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.AssignSubjectsRequest true "Subject ids"
// @Success 200 {object} dto.APIResponse "Subjects assigned"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 422 {object} dto.ErrorResponse "Unknown subject id"
// @Router /teachers/{id}/assign-subjects [post]
func (c *TeacherController) AssignSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	teacher, err := c.teacherService.AssignSubjects(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teacher, "Subjects assigned successfully"))
}

// CountTeachers returns the teacher head-count
// @Summary Count teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TotalCount} "Total retrieved"
// @Router /teachers/total [get]
func (c *TeacherController) CountTeachers(ctx *gin.Context) {
	total, err := c.teacherService.CountTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TotalCount{Total: total}, ""))
}
