package document

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lpaflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) GetDetail(ctx context.Context, id string) (*models.LpaDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LpaDocument), args.Error(1)
}

func (m *MockDocumentStore) UpdatePdf(ctx context.Context, id, storagePath string) error {
	args := m.Called(ctx, id, storagePath)
	return args.Error(0)
}

func (m *MockDocumentStore) UpdatePostal(ctx context.Context, id, reference, status string, submittedAt time.Time) error {
	args := m.Called(ctx, id, reference, status, submittedAt)
	return args.Error(0)
}

type MockDonorStore struct {
	mock.Mock
}

func (m *MockDonorStore) GetByID(ctx context.Context, id string) (*models.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donor), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, expires)
	return args.String(0), args.Error(1)
}

func detailFixture() *models.LpaDocument {
	return &models.LpaDocument{
		ID:      "11112222-3333-4444-5555-666677778888",
		DonorID: "donor-1",
		LpaType: models.LpaTypeHealthWelfare,
		Status:  models.LpaStatusComplete,
		Donor: &models.Donor{
			ID:            "donor-1",
			ApplicationID: "app-1",
			FirstName:     "Ada",
			LastName:      "Lovelace",
		},
		DocumentAttorneys: []models.LpaDocumentAttorney{
			{Role: models.AttorneyRolePrimary, Attorney: &models.Attorney{FirstName: "Grace"}},
			{Role: models.AttorneyRoleReplacement, Attorney: &models.Attorney{FirstName: "Edsger"}},
		},
	}
}

func TestGeneratePdf(t *testing.T) {
	docs := new(MockDocumentStore)
	donors := new(MockDonorStore)
	store := new(MockObjectStore)

	doc := detailFixture()
	docs.On("GetDetail", mock.Anything, doc.ID).Return(doc, nil)

	wantPath := "app-1/" + doc.ID + "/health_and_welfare.pdf"
	var uploaded []byte
	store.On("Upload", mock.Anything, wantPath, mock.Anything, "application/pdf").
		Run(func(args mock.Arguments) { uploaded = args.Get(2).([]byte) }).
		Return(nil)
	docs.On("UpdatePdf", mock.Anything, doc.ID, wantPath).Return(nil)
	store.On("PresignGet", mock.Anything, wantPath, time.Hour).
		Return("https://storage.test/signed", nil)

	s := NewService(docs, donors, store)
	result, err := s.GeneratePdf(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, wantPath, result.StoragePath)
	assert.Equal(t, "https://storage.test/signed", result.PdfURL)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal(uploaded, &snapshot))
	assert.Equal(t, models.LpaTypeHealthWelfare, snapshot["lpa_type"])
	attorneys := snapshot["attorneys"].(map[string]interface{})
	assert.Len(t, attorneys["primary"], 1)
	assert.Len(t, attorneys["replacement"], 1)

	docs.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestGeneratePdf_NotFound(t *testing.T) {
	docs := new(MockDocumentStore)
	donors := new(MockDonorStore)
	store := new(MockObjectStore)

	docs.On("GetDetail", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(docs, donors, store)
	_, err := s.GeneratePdf(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestSubmitPostal(t *testing.T) {
	docs := new(MockDocumentStore)
	donors := new(MockDonorStore)
	store := new(MockObjectStore)

	doc := detailFixture()
	doc.Status = models.LpaStatusPdfGenerated
	doc.PdfStoragePath = "app-1/" + doc.ID + "/health_and_welfare.pdf"
	docs.On("GetDetail", mock.Anything, doc.ID).Return(doc, nil)
	docs.On("UpdatePostal", mock.Anything, doc.ID, mock.Anything, models.PostalStatusSubmitted, mock.Anything).Return(nil)

	s := NewService(docs, donors, store)
	result, err := s.SubmitPostal(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, models.PostalStatusSubmitted, result.Status)
	assert.True(t, strings.HasPrefix(result.PostalReference, "SIM-"))
	assert.True(t, strings.HasSuffix(result.PostalReference, doc.ID[:8]))
}

func TestSubmitPostal_WrongStatus(t *testing.T) {
	docs := new(MockDocumentStore)
	donors := new(MockDonorStore)
	store := new(MockObjectStore)

	doc := detailFixture()
	doc.Status = models.LpaStatusComplete
	docs.On("GetDetail", mock.Anything, doc.ID).Return(doc, nil)

	s := NewService(docs, donors, store)
	_, err := s.SubmitPostal(context.Background(), doc.ID)

	var wrongStatus *WrongStatusError
	require.ErrorAs(t, err, &wrongStatus)
	assert.Equal(t, models.LpaStatusComplete, wrongStatus.Current)
	docs.AssertNotCalled(t, "UpdatePostal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPostal_NoPdf(t *testing.T) {
	docs := new(MockDocumentStore)
	donors := new(MockDonorStore)
	store := new(MockObjectStore)

	doc := detailFixture()
	doc.Status = models.LpaStatusPdfGenerated
	doc.PdfStoragePath = ""
	docs.On("GetDetail", mock.Anything, doc.ID).Return(doc, nil)

	s := NewService(docs, donors, store)
	_, err := s.SubmitPostal(context.Background(), doc.ID)

	assert.ErrorIs(t, err, ErrNoPdf)
}
