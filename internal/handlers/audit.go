package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"roastmyjob/internal/config"
	"roastmyjob/internal/merch"
)

// AuditHandler reports which catalog variants are actually sellable: it walks
// every (product, size, color) combination through the same key derivation the
// checkout uses and checks that both env entries resolve.
type AuditHandler struct {
	cfg *config.Config
}

func NewAuditHandler(cfg *config.Config) *AuditHandler {
	return &AuditHandler{cfg: cfg}
}

type auditEntry struct {
	Product string   `json:"product"`
	Size    string   `json:"size,omitempty"`
	Color   string   `json:"color,omitempty"`
	Missing []string `json:"missing"`
}

func (h *AuditHandler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if req.RequestContext.HTTP.Method != http.MethodGet {
		return errResp(405, "method not allowed")
	}

	configured := 0
	missing := make([]auditEntry, 0)
	for _, v := range merch.AllVariants() {
		keys := merch.EnvKeys(v.Product, v.Size, v.Color)
		variantID, price := h.cfg.Variant(keys)
		if variantID != "" && price != "" {
			configured++
			continue
		}
		e := auditEntry{Product: v.Product, Size: v.Size, Color: v.Color}
		if variantID == "" {
			e.Missing = append(e.Missing, keys.VariantKey)
		}
		if price == "" {
			e.Missing = append(e.Missing, keys.PriceKey)
		}
		missing = append(missing, e)
	}

	return jsonResp(200, map[string]any{
		"configured": configured,
		"missing":    missing,
	})
}
