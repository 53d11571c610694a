package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates an account and returns a bearer token
// @Summary Log in
// @Description Verifies credentials and returns an access token with the account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 422 {object} dto.ErrorResponse "Invalid request data"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Logged in successfully"))
}
