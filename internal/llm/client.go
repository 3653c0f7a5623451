// Package llm talks to the local inference endpoint. The primary client
// speaks Ollama's native /api/generate protocol; an alternative client
// covers OpenAI-compatible gateways (including Ollama's own /v1 surface).
// Neither retries: retry policy belongs to the caller.
package llm

import (
	"context"
	"time"

	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
)

// Client is the one blocking call the pipeline makes over the network.
// Generate returns the model's raw text output, already unwrapped from the
// transport envelope but otherwise untouched.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options are the generation parameters sent with every request.
type Options struct {
	Temperature float64
	TopP        float64
	NumPredict  int
	NumCtx      int
	Timeout     time.Duration
}

func optionsFrom(cfg config.AnalysisConfig) Options {
	return Options{
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		NumPredict:  cfg.NumPredict,
		NumCtx:      cfg.NumCtx,
		Timeout:     cfg.Timeout(),
	}
}

// NewClient builds the client the configuration asks for.
func NewClient(cfg config.Config) Client {
	opts := optionsFrom(cfg.Analysis)
	if cfg.Provider == "openai" {
		return NewOpenAICompatClient(cfg.OpenAIBaseURL, cfg.Ollama.Model, opts)
	}
	return NewOllamaClient(cfg.Ollama.URL(), cfg.Ollama.Model, opts)
}
