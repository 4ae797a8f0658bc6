package domain

import (
	"errors"
)

var (
	MessageSuccessChat = "chat response generated"
	MessageFailedChat  = "failed to generate chat response"

	ErrEmptyChatMessage = errors.New("message is required")
)

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required"`
		Context string `json:"context" validate:"omitempty"`
	}

	ChatResponse struct {
		Response string `json:"response"`
		Success  bool   `json:"success"`
		Fallback bool   `json:"fallback,omitempty"`
		Mode     string `json:"mode,omitempty"`
	}
)
