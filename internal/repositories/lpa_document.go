package repositories

import (
	"context"
	"time"

	"lpaflow/internal/models"

	"gorm.io/gorm"
)

// LpaDocumentRepository persists LPA documents. Listing by application joins
// through donors, since documents are owned by donors, not applications.
type LpaDocumentRepository interface {
	GetByID(ctx context.Context, id string) (*models.LpaDocument, error)
	GetDetail(ctx context.Context, id string) (*models.LpaDocument, error)
	ListByDonor(ctx context.Context, donorID string) ([]models.LpaDocument, error)
	ListByApplication(ctx context.Context, applicationID string) ([]models.LpaDocument, error)
	Create(ctx context.Context, doc *models.LpaDocument) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocument, error)
	UpdateFee(ctx context.Context, id, tier string, feePence int64) error
	UpdatePdf(ctx context.Context, id, storagePath string) error
	UpdatePostal(ctx context.Context, id, reference, status string, submittedAt time.Time) error
}

type lpaDocumentRepository struct {
	db *gorm.DB
}

func NewLpaDocumentRepository(db *gorm.DB) LpaDocumentRepository {
	return &lpaDocumentRepository{db: db}
}

func (r *lpaDocumentRepository) GetByID(ctx context.Context, id string) (*models.LpaDocument, error) {
	var doc models.LpaDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetDetail loads a document with everything the PDF snapshot needs.
func (r *lpaDocumentRepository) GetDetail(ctx context.Context, id string) (*models.LpaDocument, error) {
	var doc models.LpaDocument
	err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("DocumentAttorneys", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("DocumentAttorneys.Attorney").
		Preload("DocumentApplicants").
		Preload("DocumentApplicants.Attorney").
		Preload("PeopleToNotify").
		Preload("CertificateProviders").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *lpaDocumentRepository) ListByDonor(ctx context.Context, donorID string) ([]models.LpaDocument, error) {
	var docs []models.LpaDocument
	if err := r.db.WithContext(ctx).Where("donor_id = ?", donorID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *lpaDocumentRepository) ListByApplication(ctx context.Context, applicationID string) ([]models.LpaDocument, error) {
	var docs []models.LpaDocument
	err := r.db.WithContext(ctx).
		Joins("JOIN donors ON donors.id = lpa_documents.donor_id AND donors.deleted_at IS NULL").
		Where("donors.application_id = ?", applicationID).
		Preload("Donor").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *lpaDocumentRepository) Create(ctx context.Context, doc *models.LpaDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *lpaDocumentRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.LpaDocument, error) {
	if err := r.db.WithContext(ctx).Model(&models.LpaDocument{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateFee writes the resolved tier and fee so the figures shown to the user
// match what checkout actually charged.
func (r *lpaDocumentRepository) UpdateFee(ctx context.Context, id, tier string, feePence int64) error {
	return r.db.WithContext(ctx).Model(&models.LpaDocument{}).Where("id = ?", id).Updates(map[string]interface{}{
		"opg_fee_tier":  tier,
		"opg_fee_pence": feePence,
	}).Error
}

func (r *lpaDocumentRepository) UpdatePdf(ctx context.Context, id, storagePath string) error {
	return r.db.WithContext(ctx).Model(&models.LpaDocument{}).Where("id = ?", id).Updates(map[string]interface{}{
		"pdf_storage_path": storagePath,
		"status":           models.LpaStatusPdfGenerated,
	}).Error
}

func (r *lpaDocumentRepository) UpdatePostal(ctx context.Context, id, reference, status string, submittedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&models.LpaDocument{}).Where("id = ?", id).Updates(map[string]interface{}{
		"postal_reference":    reference,
		"postal_status":       status,
		"postal_submitted_at": submittedAt,
		"status":              models.LpaStatusSentToPost,
	}).Error
}
