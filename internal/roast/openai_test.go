package roast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"roastmyjob/internal/apperr"
)

// Both calls must refuse to go upstream without a credential.
func TestOpenAIClientMissingKey(t *testing.T) {
	c := NewOpenAIClient("", "gpt-4o", "dall-e-3")

	_, err := c.Roast(context.Background(), "barista")
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))

	_, err = c.Sticker(context.Background(), "a sticker")
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
}

func TestStickerPromptEmbedsJobAndStyle(t *testing.T) {
	p := StickerPrompt("night-shift barista", "retro")
	assert.Contains(t, p, `"night-shift barista"`)
	assert.Contains(t, p, "retro style")
}
