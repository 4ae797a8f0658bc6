package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/api/presenters"
	"agrisync-backend/pkg/midtrans"
	"agrisync-backend/pkg/order"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		DeleteOrder(c *fiber.Ctx) error
		CreateOrderPayment(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService    order.OrderService
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, midtransService midtrans.MidtransService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService:    orderService,
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	if err := h.orderService.UpdateOrderStatus(c.Context(), orderID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateOrderStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

func (h *orderHandler) DeleteOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	if err := h.orderService.DeleteOrder(c.Context(), orderID, userID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOrder)
}

func (h *orderHandler) CreateOrderPayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	res, err := h.midtransService.CreateOrderPayment(c.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreatePayment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *orderHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), payload); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "notification processed")
}
