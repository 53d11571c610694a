package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

// HandleAPIError converts a service error into the standard error envelope.
// Anything outside the known taxonomy becomes a sanitized 500 so raw
// database text never reaches a client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	// 403
	case errors.Is(err, apperrors.ErrSubjectNotAssigned):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Subject is not assigned to this teacher")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// 404
	case errors.Is(err, apperrors.ErrAccountNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Account not found")
	case errors.Is(err, apperrors.ErrAdminNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Admin not found")
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found")
	case errors.Is(err, apperrors.ErrParentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Parent not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrCycleNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Cycle not found")
	case errors.Is(err, apperrors.ErrFieldNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Field not found")
	case errors.Is(err, apperrors.ErrSpecializationNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Specialization not found")
	case errors.Is(err, apperrors.ErrLevelNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Level not found")
	case errors.Is(err, apperrors.ErrGroupNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Group not found")
	case errors.Is(err, apperrors.ErrSubjectNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Subject not found")
	case errors.Is(err, apperrors.ErrCourseFileNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course file not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	// 422
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Email already exists")
	case errors.Is(err, apperrors.ErrAdmissionNoExists):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Admission number already exists")
	case errors.Is(err, apperrors.ErrSubjectNameExists):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Subject with this name already exists")
	case errors.Is(err, apperrors.ErrProfileAlreadyExists):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Profile already exists for this account")
	case errors.Is(err, apperrors.ErrStudentGroupNotFound):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Referenced group does not exist")
	case errors.Is(err, apperrors.ErrStudentParentNotFound):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Referenced parent does not exist")
	case errors.Is(err, apperrors.ErrParentRefNotFound):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Referenced parent entity does not exist")
	case errors.Is(err, apperrors.ErrFileMissing):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "A file upload is required")
	case errors.Is(err, apperrors.ErrValidationFailed):
		message := "Validation failed"
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			message = custom.Message
		}
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, message)

	// 500
	case errors.Is(err, apperrors.ErrDependentRecords):
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeDependentRecords, "Resource has dependent records")
	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindingError converts gin binding failures into the 422 envelope
// with per-field messages.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
