// Package checkout assembles payment-provider checkout sessions from an
// application's documents and their fee assessments.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"lpaflow/internal/models"
	"lpaflow/internal/services/fees"

	stripe "github.com/stripe/stripe-go/v72"
	"gorm.io/gorm"
)

type service struct {
	apps    ApplicationStore
	docs    DocumentStore
	tiers   AssessmentStore
	stripe  StripeClient
	cache   QuoteCache
	siteURL string
}

// NewService creates a new checkout service. cache may be nil.
func NewService(
	apps ApplicationStore,
	docs DocumentStore,
	tiers AssessmentStore,
	stripeClient StripeClient,
	cache QuoteCache,
	siteURL string,
) Service {
	return &service{
		apps:    apps,
		docs:    docs,
		tiers:   tiers,
		stripe:  stripeClient,
		cache:   cache,
		siteURL: siteURL,
	}
}

// CalculateFees quotes an application's fees without touching Stripe. The
// existence check runs before the cache lookup so a deleted application never
// serves a stale cached quote.
func (s *service) CalculateFees(ctx context.Context, applicationID string) (*fees.Quote, error) {
	if _, err := s.apps.GetByID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("load application: %w", err)
	}

	if s.cache != nil {
		if quote, err := s.cache.GetQuote(ctx, applicationID); err == nil && quote != nil {
			return quote, nil
		}
	}

	docs, err := s.docs.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	quote, err := s.quoteFromDocs(ctx, docs)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetQuote(ctx, applicationID, quote); err != nil {
			log.Printf("failed to cache fee quote for %s: %v", applicationID, err)
		}
	}
	return quote, nil
}

// CreateSession runs the precondition checks, builds the Stripe session and
// persists the computed fees onto the application and its documents.
func (s *service) CreateSession(ctx context.Context, applicationID string) (*Result, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("load application: %w", err)
	}

	if app.Status != models.ApplicationStatusComplete {
		return nil, ErrApplicationNotComplete
	}

	docs, err := s.docs.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	var incomplete []string
	for _, doc := range docs {
		if doc.Status != models.LpaStatusComplete {
			incomplete = append(incomplete, doc.ID)
		}
	}
	if len(incomplete) > 0 {
		return nil, &IncompleteDocumentsError{IDs: incomplete}
	}

	quote, err := s.quoteFromDocs(ctx, docs)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  buildLineItems(quote.Breakdown),
		SuccessURL: stripe.String(s.siteURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.siteURL + "/payment/cancel?application_id=" + applicationID),
	}
	params.AddMetadata("application_id", applicationID)

	session, err := s.stripe.CreateCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	err = s.apps.UpdateCheckout(ctx, applicationID, session.ID,
		quote.OurFeePence, quote.OpgFeePence, quote.TotalPence, models.PaymentMethodCard)
	if err != nil {
		// The session exists at the provider but nothing references it yet.
		// Expire it so reconciliation never finds an orphan.
		s.expireSession(session.ID)
		return nil, fmt.Errorf("persist checkout totals: %w", err)
	}

	for _, line := range quote.Breakdown {
		if err := s.docs.UpdateFee(ctx, line.LpaDocumentID, line.OpgFeeTier, line.OpgFeePence); err != nil {
			return nil, fmt.Errorf("persist document fee: %w", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.InvalidateQuote(ctx, applicationID); err != nil {
			log.Printf("failed to invalidate fee quote for %s: %v", applicationID, err)
		}
	}

	return &Result{CheckoutURL: session.URL, SessionID: session.ID}, nil
}

func (s *service) quoteFromDocs(ctx context.Context, docs []models.LpaDocument) (*fees.Quote, error) {
	inputs := make([]fees.DocumentInput, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	donorIDs := make([]string, 0, len(docs))

	for _, doc := range docs {
		input := fees.DocumentInput{
			DocumentID: doc.ID,
			DonorID:    doc.DonorID,
			LpaType:    doc.LpaType,
		}
		if doc.Donor != nil {
			input.DonorName = doc.Donor.DisplayName()
		}
		inputs = append(inputs, input)

		if _, ok := seen[doc.DonorID]; !ok {
			seen[doc.DonorID] = struct{}{}
			donorIDs = append(donorIDs, doc.DonorID)
		}
	}

	tierByDonor, err := s.tiers.TierByDonor(ctx, donorIDs)
	if err != nil {
		return nil, fmt.Errorf("load fee tiers: %w", err)
	}

	quote := fees.Calculate(inputs, tierByDonor)
	return &quote, nil
}

// buildLineItems emits one service-fee item per document and an OPG item only
// when the registration fee is non-zero.
func buildLineItems(breakdown []fees.LineFee) []*stripe.CheckoutSessionLineItemParams {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(breakdown)*2)

	for _, line := range breakdown {
		label := models.LpaTypeLabel(line.LpaType)

		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("gbp"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("LPA Service Fee - " + label),
					Description: stripe.String(line.DonorName),
				},
				UnitAmount: stripe.Int64(line.OurFeePence),
			},
			Quantity: stripe.Int64(1),
		})

		if line.OpgFeePence > 0 {
			tierLabel := "Full"
			if line.OpgFeeTier == models.FeeTierReduced {
				tierLabel = "Reduced"
			}
			items = append(items, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("gbp"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("OPG Registration Fee - " + label),
						Description: stripe.String(fmt.Sprintf("%s (%s)", line.DonorName, tierLabel)),
					},
					UnitAmount: stripe.Int64(line.OpgFeePence),
				},
				Quantity: stripe.Int64(1),
			})
		}
	}

	return items
}

func (s *service) expireSession(id string) {
	if err := s.stripe.ExpireCheckoutSession(id); err != nil {
		log.Printf("failed to expire orphaned checkout session %s: %v", id, err)
	}
}
