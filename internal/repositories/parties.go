package repositories

import (
	"context"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// PartyRepository persists the per-document people: people to notify and
// certificate providers.
type PartyRepository interface {
	ListPeopleToNotify(ctx context.Context, lpaDocumentID string) ([]models.PersonToNotify, error)
	CreatePersonToNotify(ctx context.Context, person *models.PersonToNotify) error
	UpdatePersonToNotify(ctx context.Context, id string, updates map[string]interface{}) (*models.PersonToNotify, error)
	DeletePersonToNotify(ctx context.Context, id string) error

	GetCertificateProvider(ctx context.Context, lpaDocumentID string) (*models.CertificateProvider, error)
	CreateCertificateProvider(ctx context.Context, provider *models.CertificateProvider) error
	UpdateCertificateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.CertificateProvider, error)
	DeleteCertificateProvider(ctx context.Context, id string) error
}

type partyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) ListPeopleToNotify(ctx context.Context, lpaDocumentID string) ([]models.PersonToNotify, error) {
	var people []models.PersonToNotify
	if err := r.db.WithContext(ctx).Where("lpa_document_id = ?", lpaDocumentID).Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *partyRepository) CreatePersonToNotify(ctx context.Context, person *models.PersonToNotify) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *partyRepository) UpdatePersonToNotify(ctx context.Context, id string, updates map[string]interface{}) (*models.PersonToNotify, error) {
	if err := r.db.WithContext(ctx).Model(&models.PersonToNotify{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var person models.PersonToNotify
	if err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *partyRepository) DeletePersonToNotify(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.PersonToNotify{}, "id = ?", id).Error
}

func (r *partyRepository) GetCertificateProvider(ctx context.Context, lpaDocumentID string) (*models.CertificateProvider, error) {
	var provider models.CertificateProvider
	if err := r.db.WithContext(ctx).First(&provider, "lpa_document_id = ?", lpaDocumentID).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *partyRepository) CreateCertificateProvider(ctx context.Context, provider *models.CertificateProvider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *partyRepository) UpdateCertificateProvider(ctx context.Context, id string, updates map[string]interface{}) (*models.CertificateProvider, error) {
	if err := r.db.WithContext(ctx).Model(&models.CertificateProvider{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var provider models.CertificateProvider
	if err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *partyRepository) DeleteCertificateProvider(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.CertificateProvider{}, "id = ?", id).Error
}
