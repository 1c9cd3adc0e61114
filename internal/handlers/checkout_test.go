package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"roastmyjob/internal/checkout"
)

type stubCreator struct {
	calls int
}

func (s *stubCreator) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.calls++
	return &stripe.CheckoutSession{URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
}

func newTestCheckoutHandler(creator checkout.SessionCreator) *CheckoutHandler {
	cfg := cfgFromMap(map[string]string{
		"STRIPE_SECRET_KEY":               "sk_test_123",
		"URL_HOST":                        "https://roastmyjob.example",
		"PRINTFUL_MUG_11OZ_WHITE_VARIANT": "9001",
		"PRICE_MUG_11OZ_WHITE_EUR":        "19.99",
	})
	return NewCheckoutHandler(checkout.NewBuilder(cfg, creator))
}

func TestCheckoutHandlerRejectsGet(t *testing.T) {
	res, err := newTestCheckoutHandler(&stubCreator{}).Handle(context.Background(), httpReq(http.MethodGet, ""))
	require.NoError(t, err)
	assert.Equal(t, 405, res.StatusCode)
}

func TestCheckoutHandlerInvalidJSON(t *testing.T) {
	res, err := newTestCheckoutHandler(&stubCreator{}).Handle(context.Background(), postReq("{"))
	require.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
}

func TestCheckoutHandlerMissingProduct(t *testing.T) {
	creator := &stubCreator{}
	res, err := newTestCheckoutHandler(creator).Handle(context.Background(), postReq(`{"roast":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Equal(t, 0, creator.calls)
}

func TestCheckoutHandlerUnconfiguredVariant(t *testing.T) {
	creator := &stubCreator{}
	res, err := newTestCheckoutHandler(creator).Handle(context.Background(), postReq(`{"product":"pillow","size":"18x18","color":"white"}`))
	require.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode)
	assert.Equal(t, 0, creator.calls)
}

func TestCheckoutHandlerSuccess(t *testing.T) {
	res, err := newTestCheckoutHandler(&stubCreator{}).Handle(context.Background(), postReq(`{"product":"mug","size":"11oz","color":"white","roast":"r","style":"s"}`))
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)

	var body struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Body), &body))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", body.URL)
}
