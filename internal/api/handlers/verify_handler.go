package handlers

import (
	"agrisync-backend/domain"
	"agrisync-backend/pkg/verify"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	VerifyHandler interface {
		VerifyBatch(c *fiber.Ctx) error
		GetScanAnalytics(c *fiber.Ctx) error
	}

	verifyHandler struct {
		verifyService verify.VerifyService
	}
)

func NewVerifyHandler(verifyService verify.VerifyService) VerifyHandler {
	return &verifyHandler{verifyService: verifyService}
}

// VerifyBatch serves QR-code consumers, so it returns the bare verification
// payload rather than the wrapped API envelope.
func (h *verifyHandler) VerifyBatch(c *fiber.Ctx) error {
	batchID := c.Params("batchId")

	res, err := h.verifyService.Verify(c.Context(), batchID, c.IP())
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Verification failed"})
	}

	return c.JSON(res)
}

func (h *verifyHandler) GetScanAnalytics(c *fiber.Ctx) error {
	batchID := c.Params("batchId")

	res, err := h.verifyService.GetScanAnalytics(c.Context(), batchID)
	if err != nil {
		if errors.Is(err, domain.ErrBatchNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch analytics"})
	}

	return c.JSON(res)
}
