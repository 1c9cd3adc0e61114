package roast

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"roastmyjob/internal/apperr"
)

// Request is one roast attempt from the storefront.
type Request struct {
	Job   string `json:"job"`
	Style string `json:"style"`
}

// Result combines both upstream outputs. Sticker is base64 PNG bytes.
type Result struct {
	Roast   string `json:"roast"`
	Sticker string `json:"sticker,omitempty"`
}

// ChatClient produces the roast text for a job title.
type ChatClient interface {
	Roast(ctx context.Context, job string) (string, error)
}

// ImageClient renders a sticker for the given prompt, returned as base64.
type ImageClient interface {
	Sticker(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	chat  ChatClient
	image ImageClient
}

func NewGenerator(chat ChatClient, image ImageClient) *Generator {
	return &Generator{chat: chat, image: image}
}

// Generate runs the chat and image calls concurrently and joins them. The
// result is all-or-nothing: if either call fails the whole request fails and
// no partial payload is returned.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	job := strings.TrimSpace(req.Job)
	if job == "" {
		return nil, apperr.Validationf("missing job title")
	}
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = "vibrant"
	}

	var res Result
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		text, err := g.chat.Roast(ctx, job)
		if err != nil {
			return err
		}
		res.Roast = strings.TrimSpace(text)
		return nil
	})
	eg.Go(func() error {
		sticker, err := g.image.Sticker(ctx, StickerPrompt(job, style))
		if err != nil {
			return err
		}
		res.Sticker = sticker
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// StickerPrompt is the image prompt for one job/style pair.
func StickerPrompt(job, style string) string {
	return fmt.Sprintf("A modern vector sticker illustration representing the job %q in %s style, flat design, colourful, no text", job, style)
}
