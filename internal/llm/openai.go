package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
)

// OpenAICompatClient targets any OpenAI-compatible chat endpoint. Ollama
// exposes one at /v1, which makes this useful for deployments that sit
// behind an OpenAI-speaking proxy instead of the native API.
type OpenAICompatClient struct {
	client *openai.Client
	model  string
	opts   Options
}

func NewOpenAICompatClient(baseURL, model string, opts Options) *OpenAICompatClient {
	cfg := openai.DefaultConfig("docscan") // local gateways ignore the key
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	return &OpenAICompatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		opts:   opts,
	}
}

func (c *OpenAICompatClient) Generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("sending chat completion request", "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(c.opts.Temperature),
		TopP:        float32(c.opts.TopP),
		MaxTokens:   c.opts.NumPredict,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) || strings.Contains(err.Error(), "connection refused") {
			return "", apperrors.ServiceUnavailableError(startGuidance, err)
		}
		return "", apperrors.ProtocolError(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.ProtocolError(fmt.Errorf("no choices in completion response"))
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: try running the analysis again", apperrors.ErrEmptyResponse)
	}
	return text, nil
}
