package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
)

// ReportController exposes the student head-count reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// CountStudentsByCycleAndField reports student head-counts grouped by
// cycle and field
// @Summary Student counts per cycle and field
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Report retrieved"
// @Router /students/count-by-cycle-field [get]
func (c *ReportController) CountStudentsByCycleAndField(ctx *gin.Context) {
	report, err := c.reportService.CountStudentsByCycleAndField(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, ""))
}

// CountAllStudents reports the total number of students
// @Summary Total student count
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Count retrieved"
// @Router /students/total [get]
func (c *ReportController) CountAllStudents(ctx *gin.Context) {
	total, err := c.reportService.CountAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TotalCount{Total: total}, ""))
}

// CountStudentsByCycle reports the student count under one cycle
// @Summary Student count for a cycle
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cycle ID"
// @Success 200 {object} dto.APIResponse "Count retrieved"
// @Failure 404 {object} dto.ErrorResponse "Cycle not found"
// @Router /cycles/{id}/students/total [get]
func (c *ReportController) CountStudentsByCycle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	total, err := c.reportService.CountStudentsByCycle(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TotalCount{Total: total}, ""))
}

// CountStudentsByField reports the student count under one field
// @Summary Student count for a field
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Field ID"
// @Success 200 {object} dto.APIResponse "Count retrieved"
// @Failure 404 {object} dto.ErrorResponse "Field not found"
// @Router /fields/{id}/students/total [get]
func (c *ReportController) CountStudentsByField(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	total, err := c.reportService.CountStudentsByField(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TotalCount{Total: total}, ""))
}

// CountStudentsBySpecialization reports the student count under one
// specialization
// @Summary Student count for a specialization
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Specialization ID"
// @Success 200 {object} dto.APIResponse "Count retrieved"
// @Failure 404 {object} dto.ErrorResponse "Specialization not found"
// @Router /specializations/{id}/students/total [get]
func (c *ReportController) CountStudentsBySpecialization(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	total, err := c.reportService.CountStudentsBySpecialization(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TotalCount{Total: total}, ""))
}
