package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// CourseFileController handles course material uploads and downloads
type CourseFileController struct {
	courseFileService services.CourseFileService
}

// NewCourseFileController creates a new CourseFileController
func NewCourseFileController(courseFileService services.CourseFileService) *CourseFileController {
	return &CourseFileController{courseFileService: courseFileService}
}

// AddCourseFile uploads a course file for a subject. The authenticated
// account must be a teacher the subject is assigned to.
// @Summary Upload a course file
// @Tags course-files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param subjectId path int true "Subject ID"
// @Param fileName formData string true "Display name for the file"
// @Param file formData file true "File content"
// @Success 201 {object} dto.APIResponse "Course file created"
// @Failure 403 {object} dto.ErrorResponse "Subject not assigned to the caller"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /course-files/{subjectId} [post]
func (c *CourseFileController) AddCourseFile(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "subjectId")
	if !ok {
		return
	}

	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.AddCourseFileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrFileMissing)
		return
	}

	courseFile, err := c.courseFileService.AddCourseFile(ctx.Request.Context(), accountID, subjectID, req.FileName, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(courseFile, "Course file uploaded successfully"))
}

// GetCourseFile retrieves one course file record with its subject
// @Summary Get course file details
// @Tags course-files
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course file ID"
// @Success 200 {object} dto.APIResponse "Course file retrieved"
// @Failure 404 {object} dto.ErrorResponse "Course file not found"
// @Router /course-files/{id} [get]
func (c *CourseFileController) GetCourseFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courseFile, err := c.courseFileService.GetCourseFileByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseFile, ""))
}

// ListCourseFiles lists every course file record
// @Summary List course files
// @Tags course-files
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Course files retrieved"
// @Router /course-files [get]
func (c *CourseFileController) ListCourseFiles(ctx *gin.Context) {
	files, _, err := c.courseFileService.ListCourseFiles(ctx.Request.Context(), 0, 0, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(files, ""))
}

// ListCourseFilesPaginated lists course file records one page at a time
// @Summary List course files with pagination
// @Tags course-files
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse "Course files retrieved"
// @Router /course-files-paginated [get]
func (c *CourseFileController) ListCourseFilesPaginated(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	files, total, err := c.courseFileService.ListCourseFiles(ctx.Request.Context(), 0, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      files,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// ListCourseFilesBySubject lists the course files of one subject
// @Summary List course files of a subject
// @Tags course-files
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse "Course files retrieved"
// @Router /subjects/{id}/course-files [get]
func (c *CourseFileController) ListCourseFilesBySubject(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	files, _, err := c.courseFileService.ListCourseFiles(ctx.Request.Context(), subjectID, 0, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(files, ""))
}

// DownloadCourseFile streams the stored file back as an attachment
// @Summary Download a course file
// @Tags course-files
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Course file ID"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} dto.ErrorResponse "Course file not found"
// @Router /course-files/{id}/download [get]
func (c *CourseFileController) DownloadCourseFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fullPath, fileName, err := c.courseFileService.ResolveDownload(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(fullPath, fileName)
}

// UpdateCourseFile renames a course file and optionally replaces its content
// @Summary Update a course file
// @Tags course-files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course file ID"
// @Param fileName formData string true "Display name for the file"
// @Param file formData file false "Replacement file content"
// @Success 200 {object} dto.APIResponse "Course file updated"
// @Failure 404 {object} dto.ErrorResponse "Course file not found"
// @Router /course-files/{id} [put]
func (c *CourseFileController) UpdateCourseFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseFileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	// The replacement blob is optional on update.
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	courseFile, err := c.courseFileService.UpdateCourseFile(ctx.Request.Context(), id, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courseFile, "Course file updated successfully"))
}

// DeleteCourseFile removes a course file record and its stored content
// @Summary Delete a course file
// @Tags course-files
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course file ID"
// @Success 200 {object} dto.APIResponse "Course file deleted"
// @Failure 404 {object} dto.ErrorResponse "Course file not found"
// @Router /course-files/{id} [delete]
func (c *CourseFileController) DeleteCourseFile(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseFileService.DeleteCourseFile(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Course file deleted successfully"))
}
