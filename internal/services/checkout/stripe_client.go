package checkout

import (
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
)

type stripeClient struct{}

// NewStripeClient configures the Stripe SDK with the secret key and returns
// the live client.
func NewStripeClient(apiKey string) StripeClient {
	stripe.Key = apiKey
	return &stripeClient{}
}

func (c *stripeClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (c *stripeClient) ExpireCheckoutSession(id string) error {
	_, err := session.Expire(id, &stripe.CheckoutSessionExpireParams{})
	return err
}
