package v1

import (
	"github.com/wishpay/backend/internal/models"
)

type RegisterEditable struct {
	Name     string `json:"name" binding:"max=255" example:"Jane Doe"`                              // Display name
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`             // Email address, used to log in
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct horse staple"` // Password, between 8 and 72 characters
}

type LoginEditable struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`          // Email address
	Password string `json:"password" binding:"required" example:"correct horse staple"` // Password
}

type Session struct {
	User  models.User `json:"user"`                                         // The authenticated user
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6..."` // Bearer token for the Authorization header
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the email or password is wrong"` // The error, if any occurred
	Data  *Session `json:"data"`                                           // The session
}
