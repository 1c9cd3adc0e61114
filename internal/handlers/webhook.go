package handlers

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"roastmyjob/internal/config"
	"roastmyjob/internal/fulfillment"
	"roastmyjob/internal/orders"
)

// WebhookHandler receives signed Stripe events. Only checkout.session.completed
// triggers a side effect; every verified event is acknowledged so Stripe does
// not redeliver it.
type WebhookHandler struct {
	cfg       *config.Config
	fulfiller fulfillment.Handler
	recorder  *orders.Recorder // nil when ORDERS_TABLE is unset
}

func NewWebhookHandler(cfg *config.Config, fulfiller fulfillment.Handler, recorder *orders.Recorder) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, fulfiller: fulfiller, recorder: recorder}
}

func (h *WebhookHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if h.cfg.StripeSecretKey() == "" || h.cfg.StripeWebhookSecret() == "" {
		return textResp(500, "Stripe secrets are not configured")
	}

	event, err := webhook.ConstructEvent([]byte(req.Body), req.Headers["stripe-signature"], h.cfg.StripeWebhookSecret())
	if err != nil {
		return textResp(400, "Webhook Error: "+err.Error())
	}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return textResp(400, "Webhook Error: bad session payload")
		}
		h.completed(ctx, sess)
	}

	return jsonResp(200, map[string]any{"received": true})
}

// completed records the paid session and hands it to the fulfillment handler.
// Side-effect failures are logged only: Stripe must still get the 200, since
// redelivery cannot fix a broken side channel.
func (h *WebhookHandler) completed(ctx context.Context, sess stripe.CheckoutSession) {
	o := fulfillment.Order{
		SessionID: sess.ID,
		Product:   sess.Metadata["product"],
		VariantID: sess.Metadata["variant"],
		Size:      sess.Metadata["size"],
		Color:     sess.Metadata["color"],
		Roast:     sess.Metadata["roast"],
		Style:     sess.Metadata["style"],
	}

	if h.recorder != nil {
		dup, err := h.recorder.RecordPaid(ctx, o)
		if err != nil {
			log.Printf("webhook: record session %s: %v", o.SessionID, err)
		}
		if dup {
			log.Printf("webhook: session %s already recorded, skipping", o.SessionID)
			return
		}
	}

	if err := h.fulfiller.Fulfill(ctx, o); err != nil {
		log.Printf("webhook: fulfill session %s: %v", o.SessionID, err)
	}
}
