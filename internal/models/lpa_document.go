package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LPA document types
const (
	LpaTypeHealthWelfare   = "health_and_welfare"
	LpaTypePropertyFinance = "property_and_finance"
)

// LPA document statuses
const (
	LpaStatusDraft        = "draft"
	LpaStatusComplete     = "complete"
	LpaStatusPdfGenerated = "pdf_generated"
	LpaStatusSentToPost   = "sent_to_post"
)

// Postal statuses
const (
	PostalStatusSubmitted = "submitted"
)

// LpaDocument is one legal-document instance belonging to exactly one donor.
// The fee fields are only meaningful after fee calculation has run; they are
// overwritten every time checkout is (re)initiated.
type LpaDocument struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	DonorID string `gorm:"type:uuid;not null;index" json:"donor_id"`
	LpaType string `gorm:"not null" json:"lpa_type"`
	Status  string `gorm:"not null;default:'draft'" json:"status"`

	OpgFeeTier  string `json:"opg_fee_tier"`
	OpgFeePence int64  `json:"opg_fee_pence"`

	PdfStoragePath    string     `json:"pdf_storage_path"`
	PostalReference   string     `json:"postal_reference"`
	PostalStatus      string     `json:"postal_status"`
	PostalSubmittedAt *time.Time `json:"postal_submitted_at"`

	Donor                *Donor                 `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	DocumentAttorneys    []LpaDocumentAttorney  `gorm:"foreignKey:LpaDocumentID" json:"lpa_document_attorneys,omitempty"`
	DocumentApplicants   []LpaDocumentApplicant `gorm:"foreignKey:LpaDocumentID" json:"lpa_document_applicants,omitempty"`
	PeopleToNotify       []PersonToNotify       `gorm:"foreignKey:LpaDocumentID" json:"people_to_notify,omitempty"`
	CertificateProviders []CertificateProvider  `gorm:"foreignKey:LpaDocumentID" json:"certificate_providers,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (d *LpaDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// LpaTypeLabel maps a document type to its customer-facing name.
func LpaTypeLabel(lpaType string) string {
	if lpaType == LpaTypeHealthWelfare {
		return "Health & Welfare"
	}
	return "Property & Finance"
}
