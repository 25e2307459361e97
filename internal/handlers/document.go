package handlers

import (
	"errors"

	"lpaflow/internal/services/document"
	"lpaflow/internal/utils/response"
	"lpaflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler drives the post-payment document pipeline: PDF generation
// and the simulated postal handoff.
type DocumentHandler struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// GeneratePdf renders and stores the document artifact, returning a
// time-limited download URL.
func (h *DocumentHandler) GeneratePdf(c *fiber.Ctx) error {
	var input struct {
		LpaDocumentID string `json:"lpa_document_id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "lpa_document_id is required")
	}

	result, err := h.documentService.GeneratePdf(c.Context(), input.LpaDocumentID)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			return response.NotFound(c, "LPA document not found")
		}
		return response.ServerError(c, err.Error())
	}

	return c.JSON(result)
}

// SubmitPostal hands a generated document to the postal pipeline.
func (h *DocumentHandler) SubmitPostal(c *fiber.Ctx) error {
	var input struct {
		LpaDocumentID string `json:"lpa_document_id" validate:"required"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, "lpa_document_id is required")
	}

	result, err := h.documentService.SubmitPostal(c.Context(), input.LpaDocumentID)
	if err != nil {
		var wrongStatus *document.WrongStatusError
		switch {
		case errors.Is(err, document.ErrDocumentNotFound):
			return response.NotFound(c, "LPA document not found")
		case errors.As(err, &wrongStatus):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, document.ErrNoPdf):
			return response.BadRequest(c, "PDF must be generated before postal submission")
		default:
			return response.ServerError(c, err.Error())
		}
	}

	return c.JSON(result)
}
