package checkout

import (
	"context"
	"errors"
	"testing"

	"lpaflow/internal/models"
	"lpaflow/internal/services/fees"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) GetByID(ctx context.Context, id string) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationStore) UpdateCheckout(ctx context.Context, id, sessionID string, ourFee, opgFee, total int64, paymentMethod string) error {
	args := m.Called(ctx, id, sessionID, ourFee, opgFee, total, paymentMethod)
	return args.Error(0)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) ListByApplication(ctx context.Context, applicationID string) ([]models.LpaDocument, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LpaDocument), args.Error(1)
}

func (m *MockDocumentStore) UpdateFee(ctx context.Context, id, tier string, feePence int64) error {
	args := m.Called(ctx, id, tier, feePence)
	return args.Error(0)
}

type MockAssessmentStore struct {
	mock.Mock
}

func (m *MockAssessmentStore) TierByDonor(ctx context.Context, donorIDs []string) (map[string]string, error) {
	args := m.Called(ctx, donorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type MockStripeClient struct {
	mock.Mock
}

func (m *MockStripeClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockStripeClient) ExpireCheckoutSession(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func donor(id, first, last string) *models.Donor {
	return &models.Donor{ID: id, FirstName: first, LastName: last}
}

func TestCreateSession_ApplicationNotFound(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrApplicationNotFound)
	apps.AssertExpectations(t)
}

func TestCreateSession_ApplicationNotComplete(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusDraft,
	}, nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "app-1")

	assert.ErrorIs(t, err, ErrApplicationNotComplete)
	sc.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything)
}

func TestCreateSession_IncompleteDocuments(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusComplete,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", Status: models.LpaStatusComplete, Donor: donor("donor-1", "Ada", "Lovelace")},
		{ID: "doc-2", DonorID: "donor-1", Status: models.LpaStatusDraft, Donor: donor("donor-1", "Ada", "Lovelace")},
		{ID: "doc-3", DonorID: "donor-1", Status: models.LpaStatusDraft, Donor: donor("donor-1", "Ada", "Lovelace")},
	}, nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "app-1")

	var incomplete *IncompleteDocumentsError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"doc-2", "doc-3"}, incomplete.IDs)
	sc.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything)
}

func TestCreateSession_Success(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusComplete,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", LpaType: models.LpaTypeHealthWelfare, Status: models.LpaStatusComplete, Donor: donor("donor-1", "Ada", "Lovelace")},
		{ID: "doc-2", DonorID: "donor-1", LpaType: models.LpaTypePropertyFinance, Status: models.LpaStatusComplete, Donor: donor("donor-1", "Ada", "Lovelace")},
	}, nil)
	tiers.On("TierByDonor", mock.Anything, []string{"donor-1"}).Return(map[string]string{}, nil)

	var captured *stripe.CheckoutSessionParams
	sc.On("CreateCheckoutSession", mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(0).(*stripe.CheckoutSessionParams)
	}).Return(&stripe.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.test/cs_test_123",
	}, nil)

	apps.On("UpdateCheckout", mock.Anything, "app-1", "cs_test_123",
		int64(19800), int64(16400), int64(36200), models.PaymentMethodCard).Return(nil)
	docs.On("UpdateFee", mock.Anything, "doc-1", models.FeeTierFull, int64(8200)).Return(nil)
	docs.On("UpdateFee", mock.Anything, "doc-2", models.FeeTierFull, int64(8200)).Return(nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	result, err := s.CreateSession(context.Background(), "app-1")

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_123", result.CheckoutURL)

	require.NotNil(t, captured)
	// Two documents at full tier: a service item and an OPG item each.
	assert.Len(t, captured.LineItems, 4)
	assert.Equal(t, "https://example.test/payment/success?session_id={CHECKOUT_SESSION_ID}", *captured.SuccessURL)
	assert.Equal(t, "https://example.test/payment/cancel?application_id=app-1", *captured.CancelURL)
	assert.Equal(t, "app-1", captured.Metadata["application_id"])

	apps.AssertExpectations(t)
	docs.AssertExpectations(t)
	tiers.AssertExpectations(t)
	sc.AssertExpectations(t)
}

func TestCreateSession_ReducedTierLineItems(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusComplete,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", LpaType: models.LpaTypeHealthWelfare, Status: models.LpaStatusComplete, Donor: donor("donor-1", "Mary", "Seacole")},
	}, nil)
	tiers.On("TierByDonor", mock.Anything, []string{"donor-1"}).
		Return(map[string]string{"donor-1": models.FeeTierReduced}, nil)

	var captured *stripe.CheckoutSessionParams
	sc.On("CreateCheckoutSession", mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(0).(*stripe.CheckoutSessionParams)
	}).Return(&stripe.CheckoutSession{ID: "cs_test_456", URL: "https://checkout.stripe.test/cs_test_456"}, nil)

	apps.On("UpdateCheckout", mock.Anything, "app-1", "cs_test_456",
		int64(9900), int64(4100), int64(14000), models.PaymentMethodCard).Return(nil)
	docs.On("UpdateFee", mock.Anything, "doc-1", models.FeeTierReduced, int64(4100)).Return(nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "app-1")
	require.NoError(t, err)

	require.Len(t, captured.LineItems, 2)
	assert.Equal(t, "LPA Service Fee - Health & Welfare", *captured.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, "Mary Seacole", *captured.LineItems[0].PriceData.ProductData.Description)
	assert.Equal(t, "OPG Registration Fee - Health & Welfare", *captured.LineItems[1].PriceData.ProductData.Name)
	assert.Equal(t, "Mary Seacole (Reduced)", *captured.LineItems[1].PriceData.ProductData.Description)
	assert.Equal(t, int64(4100), *captured.LineItems[1].PriceData.UnitAmount)
}

func TestCreateSession_ExemptTierOmitsOpgItem(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusComplete,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", LpaType: models.LpaTypePropertyFinance, Status: models.LpaStatusComplete, Donor: donor("donor-1", "Alan", "Turing")},
	}, nil)
	tiers.On("TierByDonor", mock.Anything, []string{"donor-1"}).
		Return(map[string]string{"donor-1": models.FeeTierExempt}, nil)

	var captured *stripe.CheckoutSessionParams
	sc.On("CreateCheckoutSession", mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(0).(*stripe.CheckoutSessionParams)
	}).Return(&stripe.CheckoutSession{ID: "cs_test_789", URL: "https://checkout.stripe.test/cs_test_789"}, nil)

	apps.On("UpdateCheckout", mock.Anything, "app-1", "cs_test_789",
		int64(9900), int64(0), int64(9900), models.PaymentMethodCard).Return(nil)
	docs.On("UpdateFee", mock.Anything, "doc-1", models.FeeTierExempt, int64(0)).Return(nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "app-1")
	require.NoError(t, err)

	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, "LPA Service Fee - Property & Finance", *captured.LineItems[0].PriceData.ProductData.Name)
}

func TestCreateSession_ExpiresSessionWhenPersistenceFails(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusComplete,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", LpaType: models.LpaTypeHealthWelfare, Status: models.LpaStatusComplete, Donor: donor("donor-1", "Ada", "Lovelace")},
	}, nil)
	tiers.On("TierByDonor", mock.Anything, []string{"donor-1"}).Return(map[string]string{}, nil)

	sc.On("CreateCheckoutSession", mock.Anything).
		Return(&stripe.CheckoutSession{ID: "cs_orphan", URL: "https://checkout.stripe.test/cs_orphan"}, nil)
	apps.On("UpdateCheckout", mock.Anything, "app-1", "cs_orphan",
		int64(9900), int64(8200), int64(18100), models.PaymentMethodCard).
		Return(errors.New("connection reset"))
	sc.On("ExpireCheckoutSession", "cs_orphan").Return(nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CreateSession(context.Background(), "app-1")

	assert.Error(t, err)
	sc.AssertCalled(t, "ExpireCheckoutSession", "cs_orphan")
}

func TestCalculateFees_ApplicationNotFound(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	_, err := s.CalculateFees(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestCalculateFees_Totals(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusDraft,
	}, nil)
	docs.On("ListByApplication", mock.Anything, "app-1").Return([]models.LpaDocument{
		{ID: "doc-1", DonorID: "donor-1", LpaType: models.LpaTypeHealthWelfare, Donor: donor("donor-1", "Ada", "Lovelace")},
		{ID: "doc-2", DonorID: "donor-1", LpaType: models.LpaTypePropertyFinance, Donor: donor("donor-1", "Ada", "Lovelace")},
	}, nil)
	tiers.On("TierByDonor", mock.Anything, []string{"donor-1"}).Return(map[string]string{}, nil)

	s := NewService(apps, docs, tiers, sc, nil, "https://example.test")
	quote, err := s.CalculateFees(context.Background(), "app-1")

	require.NoError(t, err)
	assert.Equal(t, int64(19800), quote.OurFeePence)
	assert.Equal(t, int64(16400), quote.OpgFeePence)
	assert.Equal(t, int64(36200), quote.TotalPence)
	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, "Ada Lovelace", quote.Breakdown[0].DonorName)
}

func TestCalculateFees_UsesCache(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)
	cache := new(MockQuoteCache)

	apps.On("GetByID", mock.Anything, "app-1").Return(&models.Application{
		ID:     "app-1",
		Status: models.ApplicationStatusDraft,
	}, nil)
	cached := &fees.Quote{OurFeePence: 9900, OpgFeePence: 8200, TotalPence: 18100}
	cache.On("GetQuote", mock.Anything, "app-1").Return(cached, nil)

	s := NewService(apps, docs, tiers, sc, cache, "https://example.test")
	quote, err := s.CalculateFees(context.Background(), "app-1")

	require.NoError(t, err)
	assert.Equal(t, cached, quote)
	docs.AssertNotCalled(t, "ListByApplication", mock.Anything, mock.Anything)
}

func TestCalculateFees_DeletedApplicationBypassesCache(t *testing.T) {
	apps := new(MockApplicationStore)
	docs := new(MockDocumentStore)
	tiers := new(MockAssessmentStore)
	sc := new(MockStripeClient)
	cache := new(MockQuoteCache)

	apps.On("GetByID", mock.Anything, "app-1").Return(nil, gorm.ErrRecordNotFound)

	s := NewService(apps, docs, tiers, sc, cache, "https://example.test")
	_, err := s.CalculateFees(context.Background(), "app-1")

	// A quote cached before the application was deleted must never be served.
	assert.ErrorIs(t, err, ErrApplicationNotFound)
	cache.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything)
}

type MockQuoteCache struct {
	mock.Mock
}

func (m *MockQuoteCache) GetQuote(ctx context.Context, applicationID string) (*fees.Quote, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fees.Quote), args.Error(1)
}

func (m *MockQuoteCache) SetQuote(ctx context.Context, applicationID string, quote *fees.Quote) error {
	args := m.Called(ctx, applicationID, quote)
	return args.Error(0)
}

func (m *MockQuoteCache) InvalidateQuote(ctx context.Context, applicationID string) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}
