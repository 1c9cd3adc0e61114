package checkout

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stripe/stripe-go/v82"

	"roastmyjob/internal/apperr"
	"roastmyjob/internal/config"
	"roastmyjob/internal/merch"
)

// Request is one purchase attempt from the storefront.
type Request struct {
	Product string `json:"product"`
	Size    string `json:"size"`
	Color   string `json:"color"`
	Roast   string `json:"roast"`
	Style   string `json:"style"`
}

// SessionCreator creates the hosted checkout session with the payment
// provider.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Builder struct {
	cfg     *config.Config
	creator SessionCreator
}

func NewBuilder(cfg *config.Config, creator SessionCreator) *Builder {
	return &Builder{cfg: cfg, creator: creator}
}

// Build validates the request and resolves it into session parameters without
// touching the provider.
func (b *Builder) Build(req Request) (*stripe.CheckoutSessionParams, error) {
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return nil, apperr.Validationf("missing product")
	}
	if b.cfg.StripeSecretKey() == "" {
		return nil, apperr.Configf("STRIPE_SECRET_KEY is not configured")
	}

	keys := merch.EnvKeys(product, req.Size, req.Color)
	variantID, priceStr := b.cfg.Variant(keys)
	if variantID == "" || priceStr == "" {
		return nil, apperr.Configf("no variant or price configured for %q (size=%q, color=%q)", product, req.Size, req.Color)
	}
	priceEUR, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return nil, apperr.Configf("price for %s is not a number: %s", keys.PriceKey, priceStr)
	}
	host := b.cfg.URLHost()
	if host == "" {
		return nil, apperr.Configf("URL_HOST is not configured")
	}

	// Stripe expects unit_amount in cents.
	unitAmount := int64(math.Round(priceEUR * 100))

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyEUR)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(displayName(product)),
					Description: stripe.String(truncate(req.Roast, 200)),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(host + "/success.html?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(host + "/?canceled=1"),
	}
	params.AddMetadata("product", product)
	params.AddMetadata("variant", variantID)
	params.AddMetadata("size", req.Size)
	params.AddMetadata("color", req.Color)
	params.AddMetadata("roast", truncate(req.Roast, 500))
	params.AddMetadata("style", req.Style)

	return params, nil
}

// Create builds the session request and creates exactly one provider session,
// returning its hosted URL. No idempotency key is attached, so a client retry
// creates a second session.
func (b *Builder) Create(ctx context.Context, req Request) (string, error) {
	params, err := b.Build(req)
	if err != nil {
		return "", err
	}
	params.Context = ctx

	sess, err := b.creator.Create(params)
	if err != nil {
		return "", apperr.Upstream(err, "create checkout session")
	}
	return sess.URL, nil
}

func displayName(product string) string {
	r, n := utf8.DecodeRuneInString(product)
	return string(unicode.ToUpper(r)) + product[n:] + " merch"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
