package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository records completed checkout sessions. The unique index on
// the session id makes duplicate webhook deliveries collapse into one row.
type PaymentRepository interface {
	UpsertBySession(ctx context.Context, payment *models.Payment) error
	MarkFailedByIntent(ctx context.Context, paymentIntentID string) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) UpsertBySession(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stripe_checkout_session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stripe_payment_intent_id",
			"amount_pence",
			"status",
			"stripe_event_data",
			"paid_at",
			"updated_at",
		}),
	}).Create(payment).Error
}

func (r *paymentRepository) MarkFailedByIntent(ctx context.Context, paymentIntentID string) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("stripe_payment_intent_id = ?", paymentIntentID).
		Update("status", models.PaymentStatusFailed).Error
}
