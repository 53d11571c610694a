package dto

import "github.com/yassine/schoolhub/internal/app/models"

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@school.test"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the issued token and the authenticated account.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn" example:"3600"` // seconds
	User      *models.Account `json:"user"`
}
