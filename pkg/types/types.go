package types

import "time"

// Source values recorded on an AnalysisResult.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// AnalysisResult is the canonical structured analysis of a resume. All five
// fields are always populated, whether the content came from the model or
// from the deterministic fallback. Source tells the two apart and is never
// serialized with the record itself.
type AnalysisResult struct {
	OverallImpression string   `json:"overall_impression"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	KeySkills         []string `json:"key_skills"`
	Recommendations   []string `json:"recommendations"`

	Source string `json:"-"`
}

// SuspiciousElementCounts maps PDF risk markers (e.g. "/JavaScript") to the
// number of times they occur in the raw file bytes.
type SuspiciousElementCounts map[string]int

// Flagged reports whether any marker occurred at least once.
func (s SuspiciousElementCounts) Flagged() bool {
	for _, count := range s {
		if count > 0 {
			return true
		}
	}
	return false
}

// KeywordFrequency is one keyword with its occurrence count.
type KeywordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// KeywordStats summarizes a document's vocabulary.
type KeywordStats struct {
	Keywords    []KeywordFrequency `json:"keywords"`
	WordCount   int                `json:"word_count"`
	UniqueWords int                `json:"unique_words"`
}

// ReportData is everything the report writers and the API hand back for one
// scanned file.
type ReportData struct {
	FilePath   string                  `json:"file_path"`
	ScannedAt  time.Time               `json:"scanned_at"`
	Suspicious SuspiciousElementCounts `json:"suspicious_elements"`
	Keywords   KeywordStats            `json:"keyword_stats"`
	Analysis   AnalysisResult          `json:"analysis"`

	// AnalysisSource mirrors Analysis.Source so it survives serialization.
	AnalysisSource string `json:"analysis_source"`
}
