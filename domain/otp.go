package domain

import (
	"errors"
)

var (
	MessageSuccessSendOTP   = "OTP sent successfully"
	MessageSuccessVerifyOTP = "OTP verified successfully"

	MessageFailedSendOTP   = "failed to send OTP"
	MessageFailedVerifyOTP = "failed to verify OTP"

	ErrOTPExpired      = errors.New("OTP expired or not found")
	ErrOTPInvalid      = errors.New("invalid OTP")
	ErrOTPTooManyTries = errors.New("too many failed attempts")
	ErrInvalidPhone    = errors.New("invalid phone number format")
)

type (
	SendEmailOTPRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SendSMSOTPRequest struct {
		Phone string `json:"phone" validate:"required"`
	}

	SendOTPResponse struct {
		Message string `json:"message"`
		// DevelopmentOTP is only populated outside production, mirroring the
		// mock delivery path so the frontend can complete the flow locally.
		DevelopmentOTP string `json:"developmentOTP,omitempty"`
	}

	VerifyEmailOTPRequest struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6"`
	}

	VerifySMSOTPRequest struct {
		Phone string `json:"phone" validate:"required"`
		OTP   string `json:"otp" validate:"required,len=6"`
	}

	VerifyRegistrationRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
		EmailOTP string `json:"emailOTP" validate:"required,len=6"`
		PhoneOTP string `json:"phoneOTP" validate:"required,len=6"`
	}

	VerifyRegistrationResponse struct {
		Success       bool   `json:"success"`
		Message       string `json:"message"`
		EmailVerified bool   `json:"emailVerified"`
		PhoneVerified bool   `json:"phoneVerified"`
		EmailError    string `json:"emailError,omitempty"`
		PhoneError    string `json:"phoneError,omitempty"`
	}
)
