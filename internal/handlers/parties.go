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

// PartyHandler manages people to notify and certificate providers.
type PartyHandler struct {
	parties repositories.PartyRepository
}

func NewPartyHandler(parties repositories.PartyRepository) *PartyHandler {
	return &PartyHandler{parties: parties}
}

// ListPeopleToNotify returns every person to notify on a document.
func (h *PartyHandler) ListPeopleToNotify(c *fiber.Ctx) error {
	lpaDocumentID := c.Query("lpaDocId")
	if lpaDocumentID == "" {
		return response.BadRequest(c, "lpaDocId query parameter is required")
	}

	people, err := h.parties.ListPeopleToNotify(c.Context(), lpaDocumentID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(people)
}

// CreatePersonToNotify adds a person to notify to a document.
func (h *PartyHandler) CreatePersonToNotify(c *fiber.Ctx) error {
	var person models.PersonToNotify
	if err := c.BodyParser(&person); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		LpaDocumentID string `validate:"required"`
		FirstName     string `validate:"required"`
		LastName      string `validate:"required"`
	}{person.LpaDocumentID, person.FirstName, person.LastName}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.parties.CreatePersonToNotify(c.Context(), &person); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(person)
}

// UpdatePersonToNotify applies a partial update.
func (h *PartyHandler) UpdatePersonToNotify(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	person, err := h.parties.UpdatePersonToNotify(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Person to notify not found")
	}

	return c.JSON(person)
}

// DeletePersonToNotify removes a person to notify.
func (h *PartyHandler) DeletePersonToNotify(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "id is required")
	}

	if err := h.parties.DeletePersonToNotify(c.Context(), input.ID); err != nil {
		return repoError(c, err, "Person to notify not found")
	}

	return c.JSON(fiber.Map{"deleted": true})
}

// GetCertificateProvider returns the provider for a document.
func (h *PartyHandler) GetCertificateProvider(c *fiber.Ctx) error {
	lpaDocumentID := c.Query("lpaDocId")
	if lpaDocumentID == "" {
		return response.BadRequest(c, "lpaDocId query parameter is required")
	}

	provider, err := h.parties.GetCertificateProvider(c.Context(), lpaDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Certificate provider not found")
		}
		return response.ServerError(c, err.Error())
	}

	return c.JSON(provider)
}

// CreateCertificateProvider adds the provider to a document.
func (h *PartyHandler) CreateCertificateProvider(c *fiber.Ctx) error {
	var provider models.CertificateProvider
	if err := c.BodyParser(&provider); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		LpaDocumentID string `validate:"required"`
		FirstName     string `validate:"required"`
		LastName      string `validate:"required"`
	}{provider.LpaDocumentID, provider.FirstName, provider.LastName}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.parties.CreateCertificateProvider(c.Context(), &provider); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}

// UpdateCertificateProvider applies a partial update.
func (h *PartyHandler) UpdateCertificateProvider(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	provider, err := h.parties.UpdateCertificateProvider(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Certificate provider not found")
	}

	return c.JSON(provider)
}

// DeleteCertificateProvider removes the provider from a document.
func (h *PartyHandler) DeleteCertificateProvider(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "id is required")
	}

	if err := h.parties.DeleteCertificateProvider(c.Context(), input.ID); err != nil {
		return repoError(c, err, "Certificate provider not found")
	}

	return c.JSON(fiber.Map{"deleted": true})
}
