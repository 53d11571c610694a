package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// AddStudent creates a new student account and profile
// @Summary Add a student
// @Description Creates a new student account with its profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse "Student created"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /add-student [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student added successfully"))
}

// GetStudent retrieves one student profile with account, group and parent
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// ListStudents lists every student profile matching the filter
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over student and parent names"
// @Param cycleId query int false "Restrict to one cycle"
// @Param fieldId query int false "Restrict to one field"
// @Param specializationId query int false "Restrict to one specialization"
// @Param levelId query int false "Restrict to one level"
// @Param groupId query int false "Restrict to one group"
// @Success 200 {object} dto.APIResponse "Students retrieved"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	students, _, err := c.studentService.ListStudents(ctx.Request.Context(), &filter, 0, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}

// ListStudentsPaginated lists student profiles with filtering and pagination
// @Summary List students with pagination
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over student and parent names"
// @Param cycleId query int false "Restrict to one cycle"
// @Param fieldId query int false "Restrict to one field"
// @Param specializationId query int false "Restrict to one specialization"
// @Param levelId query int false "Restrict to one level"
// @Param groupId query int false "Restrict to one group"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Students retrieved"
// @Router /students-paginated [get]
func (c *StudentController) ListStudentsPaginated(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	students, total, err := c.studentService.ListStudents(ctx.Request.Context(), &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.PaginatedResponse{
		Items:      students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// UpdateStudent partially updates a student profile and its account
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated successfully"))
}

// DeleteStudent removes a student profile and its account
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted successfully"))
}
