package dto

import (
	"time"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
)

// RegisterRequest is a public sign-up.
type RegisterRequest struct {
	Name            string `json:"name" binding:"required,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the admin form; role defaults to author.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,role"`
}

// UpdateUserRequest changes only the fields present.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role" binding:"omitempty,role"`
	IsActive *bool   `json:"isActive"`
}

// AuthUserResponse is the account summary returned with a token.
type AuthUserResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar"`
}

type AuthResponse struct {
	Success bool             `json:"success"`
	User    AuthUserResponse `json:"user"`
	Token   string           `json:"token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	IsActive  bool      `json:"isActive"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserEnvelope struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Message string       `json:"message,omitempty"`
}

type UserListResponse struct {
	Success    bool           `json:"success"`
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

func ToAuthResponse(user *entities.User, token string) AuthResponse {
	return AuthResponse{
		Success: true,
		User: AuthUserResponse{
			ID:     user.ID,
			Email:  user.Email.String(),
			Name:   user.Name,
			Role:   string(user.Role),
			Avatar: user.Avatar,
		},
		Token: token,
	}
}

func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		Avatar:    user.Avatar,
		IsActive:  user.IsActive,
		Provider:  string(user.Provider),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
