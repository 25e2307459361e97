package handlers

import (
	"errors"

	"lpaflow/internal/services/checkout"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FeeHandler exposes the fee-calculation endpoint backing the wizard's
// payment summary step.
type FeeHandler struct {
	checkoutService checkout.Service
}

func NewFeeHandler(checkoutService checkout.Service) *FeeHandler {
	return &FeeHandler{checkoutService: checkoutService}
}

// CalculateFees returns the per-document breakdown and totals for an
// application.
func (h *FeeHandler) CalculateFees(c *fiber.Ctx) error {
	var input struct {
		ApplicationID string `json:"application_id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "application_id is required")
	}

	quote, err := h.checkoutService.CalculateFees(c.Context(), input.ApplicationID)
	if err != nil {
		if errors.Is(err, checkout.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.ServerError(c, err.Error())
	}

	return c.JSON(quote)
}
