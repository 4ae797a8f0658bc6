package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/api/presenters"
	"agrisync-backend/pkg/quote"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	QuoteHandler interface {
		CreateQuote(c *fiber.Ctx) error
		GetQuotesByProducer(c *fiber.Ctx) error
	}

	quoteHandler struct {
		quoteService quote.QuoteService
		validator    *validator.Validate
	}
)

func NewQuoteHandler(quoteService quote.QuoteService, validator *validator.Validate) QuoteHandler {
	return &quoteHandler{
		quoteService: quoteService,
		validator:    validator,
	}
}

func (h *quoteHandler) CreateQuote(c *fiber.Ctx) error {
	req := new(domain.CreateQuoteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateQuote, err)
	}

	res, err := h.quoteService.CreateQuote(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateQuote, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateQuote)
}

func (h *quoteHandler) GetQuotesByProducer(c *fiber.Ctx) error {
	producer := c.Params("producer")

	res, err := h.quoteService.GetQuotesByProducer(c.Context(), producer)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQuotes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetQuotes)
}
