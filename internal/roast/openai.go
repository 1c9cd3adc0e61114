package roast

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"roastmyjob/internal/apperr"
)

const systemPrompt = "You are a witty assistant who roasts people's jobs in a light-hearted way. Keep it playful and avoid offence."

// Short output on purpose to keep token spend predictable.
const maxRoastTokens = 150

// OpenAIClient implements ChatClient and ImageClient against the OpenAI API.
type OpenAIClient struct {
	client     openai.Client
	apiKey     string
	chatModel  string
	imageModel string
}

func NewOpenAIClient(apiKey, chatModel, imageModel string) *OpenAIClient {
	return &OpenAIClient{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		apiKey:     apiKey,
		chatModel:  chatModel,
		imageModel: imageModel,
	}
}

func (c *OpenAIClient) creds() error {
	if c.apiKey == "" {
		return apperr.Configf("OPENAI_API_KEY is not configured")
	}
	return nil
}

func (c *OpenAIClient) Roast(ctx context.Context, job string) (string, error) {
	if err := c.creds(); err != nil {
		return "", err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf("Write a roast in two sentences (maximum 100 words) about the job title: %s. Make it humourous but friendly.", job)),
		},
		MaxTokens:   openai.Int(maxRoastTokens),
		Temperature: openai.Float(0.8),
	})
	if err != nil {
		return "", upstream(err, "chat API")
	}
	if len(resp.Choices) == 0 {
		return "", apperr.Upstream(nil, "chat API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Sticker(ctx context.Context, prompt string) (string, error) {
	if err := c.creds(); err != nil {
		return "", err
	}

	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(c.imageModel),
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize512x512,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return "", upstream(err, "image API")
	}
	if len(resp.Data) == 0 {
		return "", apperr.Upstream(nil, "image API returned no images")
	}
	return resp.Data[0].B64JSON, nil
}

// upstream tags the error with the HTTP status OpenAI reported, when present.
func upstream(err error, call string) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apperr.Upstream(err, "%s error: %d", call, apierr.StatusCode)
	}
	return apperr.Upstream(err, "%s error", call)
}
