package merch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeys(t *testing.T) {
	tests := []struct {
		name    string
		product string
		size    string
		color   string
		variant string
		price   string
	}{
		{
			name:    "mug with size and color",
			product: "mug", size: "11oz", color: "white",
			variant: "PRINTFUL_MUG_11OZ_WHITE_VARIANT",
			price:   "PRICE_MUG_11OZ_WHITE_EUR",
		},
		{
			name:    "product only",
			product: "sticker",
			variant: "PRINTFUL_STICKER_VARIANT",
			price:   "PRICE_STICKER_EUR",
		},
		{
			name:    "punctuation collapses to one underscore",
			product: "t-shirt!!",
			variant: "PRINTFUL_T_SHIRT_VARIANT",
			price:   "PRICE_T_SHIRT_EUR",
		},
		{
			name:    "size without color",
			product: "poster", size: "A3",
			variant: "PRINTFUL_POSTER_A3_VARIANT",
			price:   "PRICE_POSTER_A3_EUR",
		},
		{
			name:    "whitespace trimmed",
			product: "  mug  ", size: " 11oz ",
			variant: "PRINTFUL_MUG_11OZ_VARIANT",
			price:   "PRICE_MUG_11OZ_EUR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvKeys(tt.product, tt.size, tt.color)
			assert.Equal(t, tt.variant, got.VariantKey)
			assert.Equal(t, tt.price, got.PriceKey)
		})
	}
}

func TestEnvKeysDeterministic(t *testing.T) {
	a := EnvKeys("mug", "11oz", "white")
	b := EnvKeys("mug", "11oz", "white")
	assert.Equal(t, a, b)
}

func TestEnvKeysOrderSensitive(t *testing.T) {
	a := EnvKeys("mug", "white", "11oz")
	b := EnvKeys("mug", "11oz", "white")
	assert.NotEqual(t, a, b)
}

func TestEnvKeysDropsEmptyParts(t *testing.T) {
	got := EnvKeys("mug", "", "black")
	assert.Equal(t, "PRINTFUL_MUG_BLACK_VARIANT", got.VariantKey)

	// A part that normalizes to nothing is dropped too.
	got = EnvKeys("mug", "!!!", "black")
	assert.Equal(t, "PRINTFUL_MUG_BLACK_VARIANT", got.VariantKey)
}
