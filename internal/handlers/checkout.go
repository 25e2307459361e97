package handlers

import (
	"errors"

	"lpaflow/internal/services/checkout"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler creates payment-provider checkout sessions.
type CheckoutHandler struct {
	checkoutService checkout.Service
}

func NewCheckoutHandler(checkoutService checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateCheckout validates the application and returns the hosted checkout
// URL. Incomplete documents are reported back by id so the wizard can route
// the user to finish them.
func (h *CheckoutHandler) CreateCheckout(c *fiber.Ctx) error {
	var input struct {
		ApplicationID string `json:"application_id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "application_id is required")
	}

	result, err := h.checkoutService.CreateSession(c.Context(), input.ApplicationID)
	if err != nil {
		var incomplete *checkout.IncompleteDocumentsError
		switch {
		case errors.Is(err, checkout.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, checkout.ErrApplicationNotComplete):
			return response.BadRequest(c, "Application must be in 'complete' status before payment")
		case errors.As(err, &incomplete):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":          "All LPA documents must be complete before payment",
				"incomplete_ids": incomplete.IDs,
			})
		default:
			return response.ServerError(c, err.Error())
		}
	}

	return c.JSON(result)
}
