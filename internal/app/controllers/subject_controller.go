package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// SubjectController handles subject operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject creates a new subject under a level
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse "Subject created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data or duplicate name"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject, "Subject created successfully"))
}

// GetSubject retrieves one subject with its level
// @Summary Get subject details
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse "Subject retrieved"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject, ""))
}

// ListSubjectTeachers lists the teachers a subject is assigned to
// @Summary List the teachers of a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse "Teachers retrieved"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id}/teachers [get]
func (c *SubjectController) ListSubjectTeachers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teachers, err := c.subjectService.ListSubjectTeachers(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teachers, ""))
}

// ListSubjects lists subjects, optionally filtered by level and paginated
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param levelId query int false "Restrict to one level"
// @Param page query int false "Page number (1-based); omit for the full list"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Subjects retrieved"
// @Router /subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	levelID, ok := parseOptionalIDQuery(ctx, "levelId")
	if !ok {
		return
	}

	if ctx.Query("page") == "" {
		subjects, _, err := c.subjectService.ListSubjects(ctx.Request.Context(), levelID, 0, 0)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects, ""))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	subjects, total, err := c.subjectService.ListSubjects(ctx.Request.Context(), levelID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      subjects,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateSubject partially updates a subject
// @Summary Update a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Subject updated"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject, "Subject updated successfully"))
}

// DeleteSubject removes a subject
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse "Subject deleted"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Subject deleted successfully"))
}
