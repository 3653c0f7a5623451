package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// TextExporter writes the plain-text report: security scan first, then
// keyword statistics, then the structured analysis.
type TextExporter struct{}

func (e *TextExporter) Export(data *types.ReportData, filename string) error {
	var b strings.Builder

	b.WriteString("DocumentScannerAI Report\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", data.ScannedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Analyzed File: %s\n\n", data.FilePath))

	b.WriteString("--- Security Scan ---\n")
	if flagged := flaggedMarkers(data.Suspicious); len(flagged) > 0 {
		b.WriteString("Suspicious PDF Elements Detected:\n")
		for _, m := range flagged {
			b.WriteString(fmt.Sprintf("  %s: %d\n", m.Word, m.Count))
		}
	} else {
		b.WriteString("No suspicious elements found. File is clean.\n")
	}
	b.WriteString("\n")

	b.WriteString("--- Keyword Analysis ---\n")
	b.WriteString(fmt.Sprintf("Word count: %d\n", data.Keywords.WordCount))
	b.WriteString(fmt.Sprintf("Unique words: %d\n", data.Keywords.UniqueWords))
	b.WriteString("Top keywords:\n")
	for _, kw := range data.Keywords.Keywords {
		b.WriteString(fmt.Sprintf("  %s: %d\n", kw.Word, kw.Count))
	}
	b.WriteString("\n")

	b.WriteString("--- AI Resume Analysis ---\n")
	if data.AnalysisSource == types.SourceFallback {
		b.WriteString("Note: AI response could not be parsed; showing generic analysis.\n\n")
	}
	b.WriteString("Overall impression:\n")
	b.WriteString("  " + data.Analysis.OverallImpression + "\n\n")
	writeList(&b, "Strengths", data.Analysis.Strengths)
	writeList(&b, "Weaknesses", data.Analysis.Weaknesses)
	writeList(&b, "Key skills", data.Analysis.KeySkills)
	writeList(&b, "Recommendations", data.Analysis.Recommendations)

	return os.WriteFile(filename, []byte(b.String()), 0o644)
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString(title + ":\n")
	if len(items) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
	b.WriteString("\n")
}
