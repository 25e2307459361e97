package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// AttorneyRepository persists attorneys and their per-document join rows.
type AttorneyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Attorney, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.Attorney, error)
	Create(ctx context.Context, attorney *models.Attorney) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Attorney, error)
	SoftDelete(ctx context.Context, id string) error

	CreateDocumentAttorney(ctx context.Context, row *models.LpaDocumentAttorney) error
	UpdateDocumentAttorney(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocumentAttorney, error)
	DeleteDocumentAttorney(ctx context.Context, id string) error

	CreateApplicant(ctx context.Context, row *models.LpaDocumentApplicant) error
	UpdateApplicant(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocumentApplicant, error)
	DeleteApplicant(ctx context.Context, id string) error
}

type attorneyRepository struct {
	db *gorm.DB
}

func NewAttorneyRepository(db *gorm.DB) AttorneyRepository {
	return &attorneyRepository{db: db}
}

func (r *attorneyRepository) GetByID(ctx context.Context, id string) (*models.Attorney, error) {
	var attorney models.Attorney
	if err := r.db.WithContext(ctx).First(&attorney, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attorney, nil
}

func (r *attorneyRepository) ListByApplication(ctx context.Context, applicationID string) ([]models.Attorney, error) {
	var attorneys []models.Attorney
	if err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).Find(&attorneys).Error; err != nil {
		return nil, err
	}
	return attorneys, nil
}

func (r *attorneyRepository) Create(ctx context.Context, attorney *models.Attorney) error {
	return r.db.WithContext(ctx).Create(attorney).Error
}

func (r *attorneyRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Attorney, error) {
	if err := r.db.WithContext(ctx).Model(&models.Attorney{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *attorneyRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Attorney{}, "id = ?", id).Error
}

func (r *attorneyRepository) CreateDocumentAttorney(ctx context.Context, row *models.LpaDocumentAttorney) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *attorneyRepository) UpdateDocumentAttorney(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocumentAttorney, error) {
	if err := r.db.WithContext(ctx).Model(&models.LpaDocumentAttorney{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var row models.LpaDocumentAttorney
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *attorneyRepository) DeleteDocumentAttorney(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.LpaDocumentAttorney{}, "id = ?", id).Error
}

func (r *attorneyRepository) CreateApplicant(ctx context.Context, row *models.LpaDocumentApplicant) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *attorneyRepository) UpdateApplicant(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocumentApplicant, error) {
	if err := r.db.WithContext(ctx).Model(&models.LpaDocumentApplicant{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var row models.LpaDocumentApplicant
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *attorneyRepository) DeleteApplicant(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.LpaDocumentApplicant{}, "id = ?", id).Error
}
