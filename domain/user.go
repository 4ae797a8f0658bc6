package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve profile"

	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username     string `json:"username" validate:"required,min=3"`
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=6"`
		Organization string `json:"organization" validate:"omitempty"`
		Phone        string `json:"phone" validate:"omitempty"`
		Role         string `json:"role" validate:"omitempty,oneof=producer buyer"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		Email         string `json:"email"`
		Role          string `json:"role"`
		Organization  string `json:"organization,omitempty"`
		Phone         string `json:"phone,omitempty"`
		EmailVerified bool   `json:"email_verified"`
		PhoneVerified bool   `json:"phone_verified"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
