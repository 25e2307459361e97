package handlers

import (
	"errors"

	"lpaflow/internal/models"
	"lpaflow/internal/repositories"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeadHandler manages the account record behind each wizard session.
type LeadHandler struct {
	leads repositories.LeadRepository
	apps  repositories.ApplicationRepository
}

func NewLeadHandler(leads repositories.LeadRepository, apps repositories.ApplicationRepository) *LeadHandler {
	return &LeadHandler{leads: leads, apps: apps}
}

// Register creates the lead row for a freshly signed-up user. The id comes
// from the auth provider so both systems share the same key.
func (h *LeadHandler) Register(c *fiber.Ctx) error {
	var input struct {
		UserID        string `json:"user_id" validate:"required"`
		FirstName     string `json:"first_name" validate:"required"`
		LastName      string `json:"last_name" validate:"required"`
		PreferredName string `json:"preferred_name"`
		Email         string `json:"email" validate:"omitempty,email"`
		Phone         string `json:"phone"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	lead := &models.Lead{
		ID:            input.UserID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		PreferredName: input.PreferredName,
		Email:         input.Email,
		Phone:         input.Phone,
	}

	if err := h.leads.Create(c.Context(), lead); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}

// Get returns the lead plus its applications so the wizard can resume where
// the user left off.
func (h *LeadHandler) Get(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return response.BadRequest(c, "userId query parameter is required")
	}

	lead, err := h.leads.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Lead not found")
		}
		return response.ServerError(c, err.Error())
	}

	apps, err := h.apps.ListByLead(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"lead":         lead,
		"applications": apps,
	})
}

// Update applies a partial update to the lead record.
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	lead, err := h.leads.Update(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Lead not found")
	}

	return c.JSON(lead)
}
