package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonToNotify is notified when a document is registered.
type PersonToNotify struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	LpaDocumentID string `gorm:"type:uuid;not null;index" json:"lpa_document_id"`

	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	County       string `json:"county"`
	Postcode     string `json:"postcode"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *PersonToNotify) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CertificateProvider certifies the donor understands the document.
type CertificateProvider struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	LpaDocumentID string `gorm:"type:uuid;not null;index" json:"lpa_document_id"`

	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
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

func (c *CertificateProvider) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
