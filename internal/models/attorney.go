package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attorney roles on a document
const (
	AttorneyRolePrimary     = "primary"
	AttorneyRoleReplacement = "replacement"
)

// Applicant roles on a document
const (
	ApplicantRoleDonor    = "donor"
	ApplicantRoleAttorney = "attorney"
)

// Attorney is a person appointed on one or more documents of an application.
type Attorney struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string `gorm:"type:uuid;not null;index" json:"application_id"`

	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	DateOfBirth  string `json:"date_of_birth"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	County       string `json:"county"`
	Postcode     string `json:"postcode"`
	Relationship string `json:"relationship"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (a *Attorney) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// LpaDocumentAttorney links an attorney to a document with a role.
type LpaDocumentAttorney struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	LpaDocumentID string `gorm:"type:uuid;not null;index" json:"lpa_document_id"`
	AttorneyID    string `gorm:"type:uuid;not null" json:"attorney_id"`
	Role          string `gorm:"not null;default:'primary'" json:"role"`
	SortOrder     int    `json:"sort_order"`

	Attorney *Attorney `gorm:"foreignKey:AttorneyID" json:"attorneys,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (a *LpaDocumentAttorney) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// LpaDocumentApplicant records who applies to register a document: the donor
// themselves or one of the attorneys.
type LpaDocumentApplicant struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	LpaDocumentID string  `gorm:"type:uuid;not null;index" json:"lpa_document_id"`
	ApplicantRole string  `gorm:"not null;default:'donor'" json:"applicant_role"`
	AttorneyID    *string `gorm:"type:uuid" json:"attorney_id"`

	Attorney *Attorney `gorm:"foreignKey:AttorneyID" json:"attorneys,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *LpaDocumentApplicant) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
