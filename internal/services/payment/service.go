// Package payment applies Stripe webhook events to the local records.
// Completion is idempotent: the payment row is keyed by the checkout-session
// id and the application's paid timestamp is only ever written once.
package payment

import (
	"context"
	"fmt"
	"time"

	"lpaflow/internal/models"

	stripe "github.com/stripe/stripe-go/v72"
)

// Service handles the webhook-driven side of the payment lifecycle.
type Service interface {
	CompleteCheckout(ctx context.Context, session *stripe.CheckoutSession, eventData models.JSON) error
	MarkFailed(ctx context.Context, paymentIntentID string) error
}

// PaymentStore persists payment rows.
type PaymentStore interface {
	UpsertBySession(ctx context.Context, payment *models.Payment) error
	MarkFailedByIntent(ctx context.Context, paymentIntentID string) error
}

// ApplicationStore transitions applications to paid.
type ApplicationStore interface {
	MarkPaid(ctx context.Context, id, paymentIntentID string, paidAt time.Time) error
}

type service struct {
	payments PaymentStore
	apps     ApplicationStore
	now      func() time.Time
}

// NewService creates a new payment service.
func NewService(payments PaymentStore, apps ApplicationStore) Service {
	return &service{
		payments: payments,
		apps:     apps,
		now:      time.Now,
	}
}

// CompleteCheckout records a successful checkout session and marks the
// application paid. Replayed deliveries for the same session collapse into the
// existing payment row.
func (s *service) CompleteCheckout(ctx context.Context, session *stripe.CheckoutSession, eventData models.JSON) error {
	applicationID := session.Metadata["application_id"]
	if applicationID == "" {
		return ErrMissingApplicationID
	}

	paymentIntentID := ""
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	paidAt := s.now().UTC()
	payment := &models.Payment{
		ApplicationID:           applicationID,
		StripeCheckoutSessionID: session.ID,
		StripePaymentIntentID:   paymentIntentID,
		AmountPence:             session.AmountTotal,
		Status:                  models.PaymentStatusSucceeded,
		StripeEventData:         eventData,
		PaidAt:                  &paidAt,
	}

	if err := s.payments.UpsertBySession(ctx, payment); err != nil {
		return fmt.Errorf("record payment: %w", err)
	}

	if err := s.apps.MarkPaid(ctx, applicationID, paymentIntentID, paidAt); err != nil {
		return fmt.Errorf("mark application paid: %w", err)
	}
	return nil
}

// MarkFailed flags the payment attached to a failed payment intent.
func (s *service) MarkFailed(ctx context.Context, paymentIntentID string) error {
	if err := s.payments.MarkFailedByIntent(ctx, paymentIntentID); err != nil {
		return fmt.Errorf("mark payment failed: %w", err)
	}
	return nil
}
