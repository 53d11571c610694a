package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "expired token", err: apperrors.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeExpiredToken},
		{name: "subject not assigned", err: apperrors.ErrSubjectNotAssigned, wantStatus: http.StatusForbidden, wantCode: dto.ErrorCodeForbidden},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: http.StatusForbidden, wantCode: dto.ErrorCodeForbidden},
		{name: "teacher not found", err: apperrors.ErrTeacherNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "course file not found", err: apperrors.ErrCourseFileNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "wrapped not found", err: apperrors.NewNotFoundError("stored file is missing"), wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "email exists", err: apperrors.ErrEmailAlreadyExists, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrorCodeValidationFailed},
		{name: "admission exists", err: apperrors.ErrAdmissionNoExists, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrorCodeValidationFailed},
		{name: "dangling group", err: apperrors.ErrStudentGroupNotFound, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrorCodeValidationFailed},
		{name: "missing upload", err: apperrors.ErrFileMissing, wantStatus: http.StatusUnprocessableEntity, wantCode: dto.ErrorCodeValidationFailed},
		{name: "dependent records", err: apperrors.ErrDependentRecords, wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeDependentRecords},
		{name: "unknown error", err: errors.New("pq: deadlock detected"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := runHandleAPIError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIError_ValidationMessagePassthrough(t *testing.T) {
	w, body := runHandleAPIError(t, apperrors.NewValidationError("name cannot be empty"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "name cannot be empty", body.Message)
}

func TestHandleAPIError_SanitizesUnknownErrors(t *testing.T) {
	_, body := runHandleAPIError(t, errors.New("connection refused: 10.0.0.3:5432"))

	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "10.0.0.3")
}

func TestHandleBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleBindingError(c, errors.New("invalid character '}' looking for beginning of value"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
}
