// Package scanner runs the whole pipeline for one file: validation,
// suspicious-element scan, text extraction, sanitization, keyword
// statistics, and the AI analysis.
package scanner

import (
	"context"
	"log/slog"
	"time"

	"github.com/CloudyJayC/DocumentScannerAI/internal/analysis"
	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
	"github.com/CloudyJayC/DocumentScannerAI/internal/extract"
	"github.com/CloudyJayC/DocumentScannerAI/internal/keywords"
	"github.com/CloudyJayC/DocumentScannerAI/internal/llm"
	"github.com/CloudyJayC/DocumentScannerAI/internal/sanitize"
	"github.com/CloudyJayC/DocumentScannerAI/internal/security"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// Scanner wires the pipeline components together. It is safe for
// concurrent Run calls: everything it holds is immutable after New.
type Scanner struct {
	cfg       config.Config
	sanitizer *sanitize.Sanitizer
	analyzer  *analysis.Analyzer
}

func New(cfg config.Config, client llm.Client) *Scanner {
	return &Scanner{
		cfg:       cfg,
		sanitizer: sanitize.New(cfg.Analysis.SectionHeaders),
		analyzer:  analysis.New(cfg.Analysis, client),
	}
}

// Run analyzes one PDF end to end. Validation, extraction, and transport
// failures propagate as their distinct error kinds; an unparseable model
// reply does not fail, it degrades to the fallback analysis inside the
// returned report.
func (s *Scanner) Run(ctx context.Context, path string) (*types.ReportData, error) {
	if err := security.ValidateFile(path, s.cfg.Files); err != nil {
		return nil, err
	}

	suspicious, err := security.Scan(path)
	if err != nil {
		return nil, err
	}

	pages, err := extract.Pages(path)
	if err != nil {
		return nil, err
	}

	sanitized := s.sanitizer.Sanitize(pages)
	slog.Info("sanitized document", "path", path, "pages", len(pages), "chars", len(sanitized))

	result, err := s.analyzer.Analyze(ctx, sanitized)
	if err != nil {
		return nil, err
	}

	return &types.ReportData{
		FilePath:       path,
		ScannedAt:      time.Now(),
		Suspicious:     suspicious,
		Keywords:       keywords.Analyze(sanitized),
		Analysis:       result,
		AnalysisSource: result.Source,
	}, nil
}
