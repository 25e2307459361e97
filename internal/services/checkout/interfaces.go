package checkout

import (
	"context"

	"lpaflow/internal/models"
	"lpaflow/internal/services/fees"

	stripe "github.com/stripe/stripe-go/v72"
)

// Service computes fee quotes and assembles payment-provider checkout sessions.
type Service interface {
	// CalculateFees returns the current fee quote for an application.
	CalculateFees(ctx context.Context, applicationID string) (*fees.Quote, error)

	// CreateSession validates the application, creates a Stripe checkout
	// session and persists the computed fees.
	CreateSession(ctx context.Context, applicationID string) (*Result, error)
}

// ApplicationStore is the slice of the application repository checkout needs.
type ApplicationStore interface {
	GetByID(ctx context.Context, id string) (*models.Application, error)
	UpdateCheckout(ctx context.Context, id, sessionID string, ourFee, opgFee, total int64, paymentMethod string) error
}

// DocumentStore lists an application's documents (donor preloaded) and
// persists per-document fees.
type DocumentStore interface {
	ListByApplication(ctx context.Context, applicationID string) ([]models.LpaDocument, error)
	UpdateFee(ctx context.Context, id, tier string, feePence int64) error
}

// AssessmentStore resolves fee tiers for a set of donors.
type AssessmentStore interface {
	TierByDonor(ctx context.Context, donorIDs []string) (map[string]string, error)
}

// StripeClient wraps the two provider calls checkout makes.
type StripeClient interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	ExpireCheckoutSession(id string) error
}

// QuoteCache caches fee quotes between wizard page loads. Optional.
type QuoteCache interface {
	GetQuote(ctx context.Context, applicationID string) (*fees.Quote, error)
	SetQuote(ctx context.Context, applicationID string, quote *fees.Quote) error
	InvalidateQuote(ctx context.Context, applicationID string) error
}
