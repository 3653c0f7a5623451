// Package report renders a finished ReportData into a human-readable file.
package report

import (
	"sort"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// Exporter writes one report to a file. Implementations: TextExporter
// (text_exporter.go) and HTMLExporter (html_exporter.go).
type Exporter interface {
	Export(data *types.ReportData, filename string) error
}

// ForFormat returns the exporter for a format name, defaulting to text.
func ForFormat(format string) Exporter {
	if format == "html" {
		return &HTMLExporter{}
	}
	return &TextExporter{}
}

// flaggedMarkers returns the markers that actually occurred, sorted by name
// so reports are stable across runs.
func flaggedMarkers(counts types.SuspiciousElementCounts) []types.KeywordFrequency {
	var flagged []types.KeywordFrequency
	for marker, count := range counts {
		if count > 0 {
			flagged = append(flagged, types.KeywordFrequency{Word: marker, Count: count})
		}
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i].Word < flagged[j].Word })
	return flagged
}
