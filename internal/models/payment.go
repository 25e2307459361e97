package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Payment is one completed checkout session. The unique session id is the
// idempotency boundary for webhook deliveries.
type Payment struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID string `gorm:"type:uuid;not null;index" json:"application_id"`

	StripeCheckoutSessionID string `gorm:"not null;uniqueIndex" json:"stripe_checkout_session_id"`
	StripePaymentIntentID   string `gorm:"index" json:"stripe_payment_intent_id"`
	AmountPence             int64  `json:"amount_pence"`
	Status                  string `gorm:"not null" json:"status"`
	StripeEventData         JSON   `gorm:"type:jsonb" json:"stripe_event_data"`

	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
