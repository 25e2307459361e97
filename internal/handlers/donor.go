package handlers

import (
	"lpaflow/internal/models"
	"lpaflow/internal/repositories"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler manages donors, the people each LPA document is made for.
type DonorHandler struct {
	donors repositories.DonorRepository
}

func NewDonorHandler(donors repositories.DonorRepository) *DonorHandler {
	return &DonorHandler{donors: donors}
}

// List returns every donor on an application.
func (h *DonorHandler) List(c *fiber.Ctx) error {
	applicationID := c.Query("applicationId")
	if applicationID == "" {
		return response.BadRequest(c, "applicationId query parameter is required")
	}

	donors, err := h.donors.ListByApplication(c.Context(), applicationID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(donors)
}

// Create adds a donor to an application.
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var donor models.Donor
	if err := c.BodyParser(&donor); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		ApplicationID string `validate:"required"`
		FirstName     string `validate:"required"`
		LastName      string `validate:"required"`
	}{donor.ApplicationID, donor.FirstName, donor.LastName}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.donors.Create(c.Context(), &donor); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(donor)
}

// Update applies a partial update to a donor.
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	donor, err := h.donors.Update(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Donor not found")
	}

	return c.JSON(donor)
}
