package models

import (
	"time"

	"gorm.io/gorm"
)

// Lead is the account holder working through the intake wizard. Its id is
// assigned by the hosted auth provider, not generated here.
type Lead struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName     string `gorm:"not null" json:"first_name"`
	LastName      string `gorm:"not null" json:"last_name"`
	PreferredName string `json:"preferred_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
