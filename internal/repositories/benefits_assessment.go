package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BenefitsAssessmentRepository persists per-donor fee-tier assessments.
type BenefitsAssessmentRepository interface {
	GetByDonor(ctx context.Context, donorID string) (*models.BenefitsAssessment, error)
	Upsert(ctx context.Context, assessment *models.BenefitsAssessment) error
	TierByDonor(ctx context.Context, donorIDs []string) (map[string]string, error)
}

type benefitsAssessmentRepository struct {
	db *gorm.DB
}

func NewBenefitsAssessmentRepository(db *gorm.DB) BenefitsAssessmentRepository {
	return &benefitsAssessmentRepository{db: db}
}

func (r *benefitsAssessmentRepository) GetByDonor(ctx context.Context, donorID string) (*models.BenefitsAssessment, error) {
	var assessment models.BenefitsAssessment
	if err := r.db.WithContext(ctx).First(&assessment, "donor_id = ?", donorID).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// Upsert keeps one assessment per donor, replacing the previous answers.
func (r *benefitsAssessmentRepository) Upsert(ctx context.Context, assessment *models.BenefitsAssessment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "donor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"receives_benefits",
			"benefit_types",
			"annual_income_pence",
			"calculated_fee_tier",
			"updated_at",
		}),
	}).Create(assessment).Error
}

// TierByDonor returns the assessed tier for each donor that has an assessment.
// Donors absent from the map are charged the full tier by the calculator.
func (r *benefitsAssessmentRepository) TierByDonor(ctx context.Context, donorIDs []string) (map[string]string, error) {
	tiers := make(map[string]string, len(donorIDs))
	if len(donorIDs) == 0 {
		return tiers, nil
	}

	var assessments []models.BenefitsAssessment
	err := r.db.WithContext(ctx).
		Select("donor_id", "calculated_fee_tier").
		Where("donor_id IN ?", donorIDs).
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}

	for _, a := range assessments {
		tiers[a.DonorID] = a.CalculatedFeeTier
	}
	return tiers, nil
}
