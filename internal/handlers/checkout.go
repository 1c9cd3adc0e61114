package handlers

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"roastmyjob/internal/checkout"
)

type CheckoutHandler struct {
	builder *checkout.Builder
}

func NewCheckoutHandler(builder *checkout.Builder) *CheckoutHandler {
	return &CheckoutHandler{builder: builder}
}

func (h *CheckoutHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if !isPost(req) {
		return errResp(405, "method not allowed")
	}

	var body checkout.Request
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return errResp(400, "invalid JSON")
		}
	}

	url, err := h.builder.Create(ctx, body)
	if err != nil {
		return fail(err)
	}
	return jsonResp(200, map[string]any{"url": url})
}
