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

// BenefitsHandler manages each donor's means-tested fee tier.
type BenefitsHandler struct {
	assessments repositories.BenefitsAssessmentRepository
}

func NewBenefitsHandler(assessments repositories.BenefitsAssessmentRepository) *BenefitsHandler {
	return &BenefitsHandler{assessments: assessments}
}

// Get returns the assessment for a donor, if one has been recorded.
func (h *BenefitsHandler) Get(c *fiber.Ctx) error {
	donorID := c.Query("donorId")
	if donorID == "" {
		return response.BadRequest(c, "donorId query parameter is required")
	}

	assessment, err := h.assessments.GetByDonor(c.Context(), donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Benefits assessment not found")
		}
		return response.ServerError(c, err.Error())
	}

	return c.JSON(assessment)
}

// Upsert writes a donor's assessment; one row per donor, re-submissions
// replace the previous answers.
func (h *BenefitsHandler) Upsert(c *fiber.Ctx) error {
	var assessment models.BenefitsAssessment
	if err := c.BodyParser(&assessment); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	input := struct {
		DonorID           string `validate:"required"`
		CalculatedFeeTier string `validate:"omitempty,oneof=full reduced exempt"`
	}{assessment.DonorID, assessment.CalculatedFeeTier}
	if err := validation.Struct(&input); err != nil {
		return response.ValidationError(c, err.Error())
	}

	if assessment.CalculatedFeeTier == "" {
		assessment.CalculatedFeeTier = models.FeeTierFull
	}

	if err := h.assessments.Upsert(c.Context(), &assessment); err != nil {
		return response.ServerError(c, err.Error())
	}

	return c.JSON(assessment)
}
