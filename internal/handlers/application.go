package handlers

import (
	"lpaflow/internal/models"
	"lpaflow/internal/repositories"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler manages the customer's order record.
type ApplicationHandler struct {
	apps repositories.ApplicationRepository
}

func NewApplicationHandler(apps repositories.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// List returns every application belonging to a lead.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return response.BadRequest(c, "userId query parameter is required")
	}

	apps, err := h.apps.ListByLead(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(apps)
}

// Create opens a new draft application for a lead.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var input struct {
		LeadID string `json:"lead_id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "lead_id is required")
	}

	app := &models.Application{
		LeadID: input.LeadID,
		Status: models.ApplicationStatusDraft,
	}

	if err := h.apps.Create(c.Context(), app); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// Update applies a partial update, typically the draft -> complete transition
// at the end of the wizard.
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	app, err := h.apps.Update(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Application not found")
	}

	return c.JSON(app)
}
