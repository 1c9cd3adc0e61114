package handlers

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"roastmyjob/internal/roast"
)

type RoastHandler struct {
	gen *roast.Generator
}

func NewRoastHandler(gen *roast.Generator) *RoastHandler {
	return &RoastHandler{gen: gen}
}

func (h *RoastHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if !isPost(req) {
		return errResp(405, "method not allowed")
	}

	var body roast.Request
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return errResp(400, "invalid JSON")
		}
	}

	res, err := h.gen.Generate(ctx, body)
	if err != nil {
		return fail(err)
	}
	return jsonResp(200, res)
}
