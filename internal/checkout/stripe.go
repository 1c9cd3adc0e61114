package checkout

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeCreator creates real sessions against the Stripe API.
type StripeCreator struct {
	api *client.API
}

func NewStripeCreator(secretKey string) *StripeCreator {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCreator{api: api}
}

func (c *StripeCreator) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}
