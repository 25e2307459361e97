package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donor is a person documents are being created for; owned by one application.
type Donor struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string `gorm:"type:uuid;not null;index" json:"application_id"`

	FirstName      string `gorm:"not null" json:"first_name"`
	LastName       string `gorm:"not null" json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AddressLine1   string `json:"address_line_1"`
	AddressLine2   string `json:"address_line_2"`
	City           string `json:"city"`
	County         string `json:"county"`
	Postcode       string `json:"postcode"`
	IsAccountOwner bool   `json:"is_account_owner"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// DisplayName is the name shown on fee breakdowns and Stripe line items.
func (d *Donor) DisplayName() string {
	return d.FirstName + " " + d.LastName
}
