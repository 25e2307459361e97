// Package document produces PDF artifacts for finished documents and hands
// them to the (simulated) postal pipeline.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lpaflow/internal/models"
	"lpaflow/internal/storage"

	"gorm.io/gorm"
)

const signedURLTTL = time.Hour

// Service generates PDF snapshots and submits documents to post.
type Service interface {
	GeneratePdf(ctx context.Context, lpaDocumentID string) (*GenerateResult, error)
	SubmitPostal(ctx context.Context, lpaDocumentID string) (*PostalResult, error)
}

// DocumentStore is the slice of the document repository this service needs.
type DocumentStore interface {
	GetDetail(ctx context.Context, id string) (*models.LpaDocument, error)
	UpdatePdf(ctx context.Context, id, storagePath string) error
	UpdatePostal(ctx context.Context, id, reference, status string, submittedAt time.Time) error
}

// DonorStore resolves a document's donor and owning application.
type DonorStore interface {
	GetByID(ctx context.Context, id string) (*models.Donor, error)
}

// GenerateResult points the client at the fresh artifact.
type GenerateResult struct {
	PdfURL      string `json:"pdf_url"`
	StoragePath string `json:"storage_path"`
}

// PostalResult reports the simulated carrier handoff.
type PostalResult struct {
	PostalReference string `json:"postal_reference"`
	Status          string `json:"status"`
}

type service struct {
	docs   DocumentStore
	donors DonorStore
	store  storage.ObjectStore
	now    func() time.Time
}

// NewService creates a new document service.
func NewService(docs DocumentStore, donors DonorStore, store storage.ObjectStore) Service {
	return &service{
		docs:   docs,
		donors: donors,
		store:  store,
		now:    time.Now,
	}
}

// GeneratePdf assembles the document snapshot, uploads it and advances the
// document to pdf_generated. The artifact is a structured placeholder until a
// real renderer is wired in.
func (s *service) GeneratePdf(ctx context.Context, lpaDocumentID string) (*GenerateResult, error) {
	doc, err := s.docs.GetDetail(ctx, lpaDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}

	donor := doc.Donor
	if donor == nil {
		donor, err = s.donors.GetByID(ctx, doc.DonorID)
		if err != nil {
			return nil, fmt.Errorf("load donor: %w", err)
		}
	}

	var primary, replacement []*models.Attorney
	for i := range doc.DocumentAttorneys {
		row := &doc.DocumentAttorneys[i]
		switch row.Role {
		case models.AttorneyRoleReplacement:
			replacement = append(replacement, row.Attorney)
		default:
			primary = append(primary, row.Attorney)
		}
	}

	var certProvider *models.CertificateProvider
	if len(doc.CertificateProviders) > 0 {
		certProvider = &doc.CertificateProviders[0]
	}

	snapshot := map[string]interface{}{
		"lpa_type": doc.LpaType,
		"donor":    donor,
		"attorneys": map[string]interface{}{
			"primary":     primary,
			"replacement": replacement,
		},
		"applicants":           doc.DocumentApplicants,
		"people_to_notify":     doc.PeopleToNotify,
		"certificate_provider": certProvider,
	}

	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	storagePath := fmt.Sprintf("%s/%s/%s.pdf", donor.ApplicationID, doc.ID, doc.LpaType)
	if err := s.store.Upload(ctx, storagePath, content, "application/pdf"); err != nil {
		return nil, fmt.Errorf("upload artifact: %w", err)
	}

	if err := s.docs.UpdatePdf(ctx, doc.ID, storagePath); err != nil {
		return nil, fmt.Errorf("persist artifact path: %w", err)
	}

	url, err := s.store.PresignGet(ctx, storagePath, signedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("sign artifact url: %w", err)
	}

	return &GenerateResult{PdfURL: url, StoragePath: storagePath}, nil
}

// SubmitPostal simulates handing a generated document to the postal carrier.
func (s *service) SubmitPostal(ctx context.Context, lpaDocumentID string) (*PostalResult, error) {
	doc, err := s.docs.GetDetail(ctx, lpaDocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}

	if doc.Status != models.LpaStatusPdfGenerated {
		return nil, &WrongStatusError{Current: doc.Status}
	}
	if doc.PdfStoragePath == "" {
		return nil, ErrNoPdf
	}

	submittedAt := s.now().UTC()
	reference := postalReference(doc.ID, submittedAt)

	err = s.docs.UpdatePostal(ctx, doc.ID, reference, models.PostalStatusSubmitted, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("persist postal submission: %w", err)
	}

	return &PostalResult{PostalReference: reference, Status: models.PostalStatusSubmitted}, nil
}

func postalReference(docID string, at time.Time) string {
	prefix := docID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("SIM-%d-%s", at.UnixMilli(), prefix)
}
