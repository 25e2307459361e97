package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// DonorRepository persists donors under an application.
type DonorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Donor, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.Donor, error)
	Create(ctx context.Context, donor *models.Donor) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Donor, error)
}

type donorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) GetByID(ctx context.Context, id string) (*models.Donor, error) {
	var donor models.Donor
	if err := r.db.WithContext(ctx).First(&donor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) ListByApplication(ctx context.Context, applicationID string) ([]models.Donor, error) {
	var donors []models.Donor
	if err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) Create(ctx context.Context, donor *models.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Donor, error) {
	if err := r.db.WithContext(ctx).Model(&models.Donor{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
