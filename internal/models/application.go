package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses
const (
	ApplicationStatusDraft    = "draft"
	ApplicationStatusComplete = "complete"
	ApplicationStatusPaid     = "paid"
)

// Payment methods recorded on an application
const (
	PaymentMethodCard = "card"
)

// Application is one customer's order. Fee totals and the checkout session id
// are written when checkout is created; status moves to paid via the webhook.
type Application struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	LeadID string `gorm:"type:uuid;not null;index" json:"lead_id"`
	Status string `gorm:"not null;default:'draft'" json:"status"`

	OurFeePence   int64  `json:"our_fee_pence"`
	OpgFeePence   int64  `json:"opg_fee_pence"`
	TotalPence    int64  `json:"total_pence"`
	PaymentMethod string `json:"payment_method"`

	StripeCheckoutSessionID string     `json:"stripe_checkout_session_id"`
	StripePaymentIntentID   string     `json:"stripe_payment_intent_id"`
	PaidAt                  *time.Time `json:"paid_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
