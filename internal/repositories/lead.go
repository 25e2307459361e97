package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// LeadRepository persists account holders.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Lead, error) {
	if err := r.db.WithContext(ctx).Model(&models.Lead{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
