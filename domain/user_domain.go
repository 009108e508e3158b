package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteUser = "User removed"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound       = errors.New("User not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserInUse          = errors.New("user still owns listings, donations or orders")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=donor ngo"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
		Email  *string `json:"email" validate:"omitempty,email"`
		Role   *string `json:"role" validate:"omitempty,oneof=donor ngo admin"`
		Access *bool   `json:"access"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Access    bool      `json:"access"`
		CreatedAt time.Time `json:"createdAt"`
	}

	AuthResponse struct {
		User  UserResponse `json:"user"`
		Token string       `json:"token"`
	}
)
