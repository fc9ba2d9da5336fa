package dto

import (
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// Request DTOs for User Handlers

// RegisterRequest defines the structure for user registration.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Avatar   *string `json:"avatar"`
}

// LoginRequest defines the structure for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the structure for updating the caller's own profile.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Avatar *string `json:"avatar"`
}

// UpdatePasswordRequest requires the old password before accepting a new one.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AdminUpdateUserRequest defines the structure for admin edits of any user.
type AdminUpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Avatar  *string `json:"avatar"`
	IsAdmin *bool   `json:"isAdmin"`
}

// Response DTOs

// UserResponse is the DTO for a user profile.
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar,omitempty"`
	IsAdmin   bool    `json:"isAdmin"`
	CreatedAt string  `json:"createdAt"`
}

// AuthResponse is the profile-plus-token payload returned by register, login
// and the self-service update endpoints.
type AuthResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Avatar  *string `json:"avatar,omitempty"`
	IsAdmin bool    `json:"isAdmin"`
	Token   string  `json:"token"`
}

// PaginatedUsersResponse is the page envelope for the admin user listing.
type PaginatedUsersResponse struct {
	Users []UserResponse `json:"users"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Count int64          `json:"count"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToAuthResponse converts an entity.User plus its token to an AuthResponse.
func ToAuthResponse(user entity.User, token string) AuthResponse {
	return AuthResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Avatar:  user.Avatar,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}
}
