package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/api/presenters"
	"agrisync-backend/pkg/ai"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		Chat(c *fiber.Ctx) error
	}

	aiHandler struct {
		aiService ai.AIService
		validator *validator.Validate
	}
)

func NewAIHandler(aiService ai.AIService, validator *validator.Validate) AIHandler {
	return &aiHandler{
		aiService: aiService,
		validator: validator,
	}
}

func (h *aiHandler) Chat(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	// The service degrades to a canned answer instead of failing, so this
	// endpoint always answers 200 with a chat response.
	res := h.aiService.Chat(c.Context(), *req)
	return c.JSON(res)
}
