package handlers

import (
	"lpaflow/internal/models"
	"lpaflow/internal/repositories"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LpaDocumentHandler manages the LPA document records themselves.
type LpaDocumentHandler struct {
	docs repositories.LpaDocumentRepository
}

func NewLpaDocumentHandler(docs repositories.LpaDocumentRepository) *LpaDocumentHandler {
	return &LpaDocumentHandler{docs: docs}
}

// Get serves two lookups: all documents for a donor, or a single document
// with its attorneys, applicants, people to notify and certificate provider.
func (h *LpaDocumentHandler) Get(c *fiber.Ctx) error {
	if lpaDocID := c.Query("lpaDocId"); lpaDocID != "" {
		doc, err := h.docs.GetDetail(c.Context(), lpaDocID)
		if err != nil {
			return repoError(c, err, "LPA document not found")
		}
		return c.JSON(doc)
	}

	donorID := c.Query("donorId")
	if donorID == "" {
		return response.BadRequest(c, "donorId or lpaDocId query parameter is required")
	}

	docs, err := h.docs.ListByDonor(c.Context(), donorID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(docs)
}

// Create opens a new draft document for a donor.
func (h *LpaDocumentHandler) Create(c *fiber.Ctx) error {
	var input struct {
		DonorID string `json:"donor_id" validate:"required"`
		LpaType string `json:"lpa_type" validate:"required,oneof=health_and_welfare property_and_finance"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	doc := &models.LpaDocument{
		DonorID: input.DonorID,
		LpaType: input.LpaType,
		Status:  models.LpaStatusDraft,
	}

	if err := h.docs.Create(c.Context(), doc); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Update applies a partial update to a document, typically its status as the
// wizard steps are finished.
func (h *LpaDocumentHandler) Update(c *fiber.Ctx) error {
	id, updates, err := parseUpdatePayload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if id == "" {
		return response.BadRequest(c, "id is required")
	}

	doc, err := h.docs.Update(c.Context(), id, updates)
	if err != nil {
		return repoError(c, err, "LPA document not found")
	}

	return c.JSON(doc)
}
