package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/api/presenters"
	"agrisync-backend/pkg/otp"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OTPHandler interface {
		SendEmailOTP(c *fiber.Ctx) error
		SendSMSOTP(c *fiber.Ctx) error
		VerifyEmailOTP(c *fiber.Ctx) error
		VerifySMSOTP(c *fiber.Ctx) error
		VerifyRegistration(c *fiber.Ctx) error
	}

	otpHandler struct {
		otpService otp.OTPService
		validator  *validator.Validate
	}
)

func NewOTPHandler(otpService otp.OTPService, validator *validator.Validate) OTPHandler {
	return &otpHandler{
		otpService: otpService,
		validator:  validator,
	}
}

func (h *otpHandler) SendEmailOTP(c *fiber.Ctx) error {
	req := new(domain.SendEmailOTPRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendOTP, err)
	}

	res, err := h.otpService.SendEmailOTP(c.Context(), req.Email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendOTP, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendOTP)
}

func (h *otpHandler) SendSMSOTP(c *fiber.Ctx) error {
	req := new(domain.SendSMSOTPRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendOTP, err)
	}

	res, err := h.otpService.SendSMSOTP(c.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPhone) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendOTP, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendOTP, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendOTP)
}

func (h *otpHandler) VerifyEmailOTP(c *fiber.Ctx) error {
	req := new(domain.VerifyEmailOTPRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	if err := h.otpService.VerifyEmailOTP(c.Context(), req.Email, req.OTP); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyOTP)
}

func (h *otpHandler) VerifySMSOTP(c *fiber.Ctx) error {
	req := new(domain.VerifySMSOTPRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	if err := h.otpService.VerifySMSOTP(c.Context(), req.Phone, req.OTP); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVerifyOTP)
}

func (h *otpHandler) VerifyRegistration(c *fiber.Ctx) error {
	req := new(domain.VerifyRegistrationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOTP, err)
	}

	res := h.otpService.VerifyRegistration(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyOTP)
}
