package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
)

const startGuidance = "make sure Ollama is running (run: ollama serve) and try again"

// OllamaClient posts to Ollama's /api/generate endpoint with streaming
// disabled, so the full response text arrives in one envelope.
type OllamaClient struct {
	url   string
	model string
	opts  Options
	http  *http.Client
}

func NewOllamaClient(url, model string, opts Options) *OllamaClient {
	return &OllamaClient{
		url:   url,
		model: model,
		opts:  opts,
		http:  &http.Client{Timeout: opts.Timeout},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
	NumCtx      int     `json:"num_ctx"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.opts.Temperature,
			TopP:        c.opts.TopP,
			NumPredict:  c.opts.NumPredict,
			NumCtx:      c.opts.NumCtx,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("sending generate request", "url", c.url, "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apperrors.ServiceUnavailableError(startGuidance, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.ServiceUnavailableError(startGuidance, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.ProtocolError(fmt.Errorf("endpoint returned HTTP %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}

	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", apperrors.ProtocolError(err)
	}

	text := strings.TrimSpace(envelope.Response)
	if text == "" {
		return "", fmt.Errorf("%w: try running the analysis again", apperrors.ErrEmptyResponse)
	}

	slog.Debug("received generate response", "response_chars", len(text))
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
