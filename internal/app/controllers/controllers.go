package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// the validation envelope and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional positive int64 query parameter,
// returning 0 when absent. On a malformed value it writes the validation
// envelope and returns false.
func parseOptionalIDQuery(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
