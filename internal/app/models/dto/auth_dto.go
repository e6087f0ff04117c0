package dto

import (
	"time"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@organicclasses.com"`
	Password string `json:"password" binding:"required,min=6" example:"admin123"`
}

// RegisterRequest is used by admins to create staff accounts
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,max=50" example:"Dr. Priya Singh"`
	Email    string          `json:"email" binding:"required,email" example:"priya@organicclasses.com"`
	Password string          `json:"password" binding:"required,min=6" example:"teacher123"`
	Role     models.RoleType `json:"role" binding:"omitempty,oneof=admin teacher" example:"teacher"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        string     `json:"id" example:"665f1c2e8b3e4a0012345678"`
	Name      string     `json:"name" example:"Admin User"`
	Email     string     `json:"email" example:"admin@organicclasses.com"`
	Role      string     `json:"role" example:"admin"`
	IsActive  bool       `json:"isActive" example:"true"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LoginResponse carries the bearer token and the signed in user
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int64        `json:"expiresIn" example:"604800"`
	User      UserResponse `json:"user"`
}

// NewUserResponse converts a stored user into its public form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserSummary converts a user into the short populated reference form
func NewUserSummary(user *models.User) *UserSummary {
	if user == nil {
		return nil
	}
	return &UserSummary{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}
}
