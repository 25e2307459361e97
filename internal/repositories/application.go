package repositories

import (
	"context"
	"time"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository persists applications and their computed fee fields.
type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByLead(ctx context.Context, leadID string) ([]models.Application, error)
	Create(ctx context.Context, app *models.Application) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Application, error)
	UpdateCheckout(ctx context.Context, id, sessionID string, ourFee, opgFee, total int64, paymentMethod string) error
	MarkPaid(ctx context.Context, id, paymentIntentID string, paidAt time.Time) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByLead(ctx context.Context, leadID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).Where("lead_id = ?", leadID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Application, error) {
	if err := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateCheckout stores the session id and fee totals computed at checkout.
func (r *applicationRepository) UpdateCheckout(ctx context.Context, id, sessionID string, ourFee, opgFee, total int64, paymentMethod string) error {
	return r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stripe_checkout_session_id": sessionID,
		"our_fee_pence":              ourFee,
		"opg_fee_pence":              opgFee,
		"total_pence":                total,
		"payment_method":             paymentMethod,
	}).Error
}

// MarkPaid transitions an application to paid. The paid timestamp is only
// written once: replayed webhook deliveries leave the original value intact.
func (r *applicationRepository) MarkPaid(ctx context.Context, id, paymentIntentID string, paidAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND paid_at IS NULL", id).
		Updates(map[string]interface{}{
			"status":                   models.ApplicationStatusPaid,
			"stripe_payment_intent_id": paymentIntentID,
			"paid_at":                  paidAt,
		}).Error
}
