package handlers

import (
	"lpaflow/internal/models"
	"lpaflow/internal/repositories"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AttorneyHandler manages attorneys and their links to documents, both as
// appointed attorneys and as registration applicants.
type AttorneyHandler struct {
	attorneys repositories.AttorneyRepository
}

func NewAttorneyHandler(attorneys repositories.AttorneyRepository) *AttorneyHandler {
	return &AttorneyHandler{attorneys: attorneys}
}

// List returns every attorney on an application.
func (h *AttorneyHandler) List(c *fiber.Ctx) error {
	applicationID := c.Query("applicationId")
	if applicationID == "" {
		return response.BadRequest(c, "applicationId query parameter is required")
	}

	attorneys, err := h.attorneys.ListByApplication(c.Context(), applicationID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(attorneys)
}

// Create adds an attorney to an application's shared pool.
func (h *AttorneyHandler) Create(c *fiber.Ctx) error {
	var attorney models.Attorney
	if err := c.BodyParser(&attorney); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		ApplicationID string `validate:"required"`
		FirstName     string `validate:"required"`
		LastName      string `validate:"required"`
	}{attorney.ApplicationID, attorney.FirstName, attorney.LastName}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if err := h.attorneys.Create(c.Context(), &attorney); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(attorney)
}

// Update applies a partial update to an attorney.
func (h *AttorneyHandler) Update(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	attorney, err := h.attorneys.Update(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Attorney not found")
	}

	return c.JSON(attorney)
}

// Delete soft-deletes an attorney. Join rows keep their foreign key but the
// attorney no longer appears in listings or documents.
func (h *AttorneyHandler) Delete(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "id is required")
	}

	if err := h.attorneys.SoftDelete(c.Context(), input.ID); err != nil {
		return repoError(c, err, "Attorney not found")
	}

	return c.JSON(fiber.Map{"deleted": true})
}

// CreateDocumentAttorney appoints an attorney on a document with a role.
func (h *AttorneyHandler) CreateDocumentAttorney(c *fiber.Ctx) error {
	var row models.LpaDocumentAttorney
	if err := c.BodyParser(&row); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		LpaDocumentID string `validate:"required"`
		AttorneyID    string `validate:"required"`
		Role          string `validate:"omitempty,oneof=primary replacement"`
	}{row.LpaDocumentID, row.AttorneyID, row.Role}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if row.Role == "" {
		row.Role = models.AttorneyRolePrimary
	}

	if err := h.attorneys.CreateDocumentAttorney(c.Context(), &row); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpdateDocumentAttorney changes an appointment's role or ordering.
func (h *AttorneyHandler) UpdateDocumentAttorney(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	row, err := h.attorneys.UpdateDocumentAttorney(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Document attorney not found")
	}

	return c.JSON(row)
}

// DeleteDocumentAttorney removes an appointment from a document.
func (h *AttorneyHandler) DeleteDocumentAttorney(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "id is required")
	}

	if err := h.attorneys.DeleteDocumentAttorney(c.Context(), input.ID); err != nil {
		return repoError(c, err, "Document attorney not found")
	}

	return c.JSON(fiber.Map{"deleted": true})
}

// CreateApplicant records who will apply to register a document.
func (h *AttorneyHandler) CreateApplicant(c *fiber.Ctx) error {
	var row models.LpaDocumentApplicant
	if err := c.BodyParser(&row); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		LpaDocumentID string `validate:"required"`
		ApplicantRole string `validate:"omitempty,oneof=donor attorney"`
	}{row.LpaDocumentID, row.ApplicantRole}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if row.ApplicantRole == "" {
		row.ApplicantRole = models.ApplicantRoleDonor
	}

	if err := h.attorneys.CreateApplicant(c.Context(), &row); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpdateApplicant changes an applicant row.
func (h *AttorneyHandler) UpdateApplicant(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	row, err := h.attorneys.UpdateApplicant(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "Document applicant not found")
	}

	return c.JSON(row)
}

// DeleteApplicant removes an applicant row from a document.
func (h *AttorneyHandler) DeleteApplicant(c *fiber.Ctx) error {
	var input struct {
		ID string `json:"id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "id is required")
	}

	if err := h.attorneys.DeleteApplicant(c.Context(), input.ID); err != nil {
		return repoError(c, err, "Document applicant not found")
	}

	return c.JSON(fiber.Map{"deleted": true})
}
