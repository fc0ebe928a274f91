package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=150"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50,alphanum"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Title    string    `json:"title,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Username *string   `json:"username,omitempty"`
	IsPublic bool      `json:"is_public"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
