package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fee tiers discounting the OPG registration fee. A donor without an
// assessment row is charged the full tier.
const (
	FeeTierFull    = "full"
	FeeTierReduced = "reduced"
	FeeTierExempt  = "exempt"
)

// BenefitsAssessment holds one donor's means-tested fee tier.
type BenefitsAssessment struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	DonorID string `gorm:"type:uuid;not null;uniqueIndex" json:"donor_id"`

	ReceivesBenefits  bool       `json:"receives_benefits"`
	BenefitTypes      StringList `gorm:"type:jsonb" json:"benefit_types"`
	AnnualIncomePence *int64     `json:"annual_income_pence"`
	CalculatedFeeTier string     `gorm:"not null;default:'full'" json:"calculated_fee_tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BenefitsAssessment) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
