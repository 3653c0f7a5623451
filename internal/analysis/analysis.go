// Package analysis runs the text half of the pipeline: trim the sanitized
// document to its resume core, build the prompt, call the model, and
// recover a well-formed record from whatever comes back.
package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
	"github.com/CloudyJayC/DocumentScannerAI/internal/llm"
	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// Analyzer owns one model client and the extraction settings. It holds no
// per-request state; concurrent calls only share the immutable config.
type Analyzer struct {
	cfg    config.AnalysisConfig
	client llm.Client
}

func New(cfg config.AnalysisConfig, client llm.Client) *Analyzer {
	return &Analyzer{cfg: cfg, client: client}
}

// Analyze turns a sanitized document into an AnalysisResult.
//
// Empty or whitespace-only input is rejected before any network call, as
// is a document whose resume core comes up empty (the whole document was
// non-resume content). Transport failures propagate as their distinct
// error kinds; an unparseable model reply does NOT fail — it degrades to
// the fallback record.
func (a *Analyzer) Analyze(ctx context.Context, sanitized string) (types.AnalysisResult, error) {
	if strings.TrimSpace(sanitized) == "" {
		return types.AnalysisResult{}, apperrors.InputError("no resume text provided for analysis")
	}

	core := ExtractCore(sanitized, a.cfg.MaxWords, a.cfg.StopPhrases)
	if core == "" {
		return types.AnalysisResult{}, apperrors.InputError("no usable resume content found")
	}
	slog.Info("starting analysis", "core_chars", len(core))

	raw, err := a.client.Generate(ctx, BuildPrompt(core))
	if err != nil {
		return types.AnalysisResult{}, err
	}

	result := Recover(raw)
	slog.Info("analysis complete", "source", result.Source)
	return result, nil
}
