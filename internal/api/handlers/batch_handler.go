package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/api/presenters"
	"agrisync-backend/pkg/batch"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BatchHandler interface {
		CreateBatch(c *fiber.Ctx) error
		GetBatches(c *fiber.Ctx) error
		GetBatchDetails(c *fiber.Ctx) error
		AddEvent(c *fiber.Ctx) error
		AddCertification(c *fiber.Ctx) error
		GetMarketplace(c *fiber.Ctx) error
	}

	batchHandler struct {
		batchService batch.BatchService
		validator    *validator.Validate
	}
)

func NewBatchHandler(batchService batch.BatchService, validator *validator.Validate) BatchHandler {
	return &batchHandler{
		batchService: batchService,
		validator:    validator,
	}
}

func (h *batchHandler) CreateBatch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	res, err := h.batchService.CreateBatch(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBatch)
}

func (h *batchHandler) GetBatches(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.batchService.GetBatches(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBatches, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatches)
}

func (h *batchHandler) GetBatchDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")

	res, err := h.batchService.GetBatchDetails(c.Context(), batchID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetBatchDetails, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetBatchDetails, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBatchDetails)
}

func (h *batchHandler) AddEvent(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.AddEventRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if photo, err := c.FormFile("photo"); err == nil {
		req.Photo = photo
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	res, err := h.batchService.AddEvent(c.Context(), batchID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddEvent, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEvent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEvent)
}

func (h *batchHandler) AddCertification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	batchID := c.Params("id")
	req := new(domain.AddCertificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if document, err := c.FormFile("document"); err == nil {
		req.Document = document
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCertification, err)
	}

	res, err := h.batchService.AddCertification(c.Context(), batchID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddCertification, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCertification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCertification)
}

func (h *batchHandler) GetMarketplace(c *fiber.Ctx) error {
	res, err := h.batchService.GetMarketplace(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMarketplace, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMarketplace)
}
