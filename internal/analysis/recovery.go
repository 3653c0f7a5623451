package analysis

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// requiredKeys must all be present before a parsed candidate is accepted.
// Extra keys are allowed; coercion discards them.
var requiredKeys = []string{
	"overall_impression",
	"strengths",
	"weaknesses",
	"key_skills",
	"recommendations",
}

var (
	fenceMarker   = regexp.MustCompile("```(?:json)?")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// strategy is one ordered attempt to pull a JSON object out of free text.
// Strategies run strict to loose, so the first hit is always the most
// trustworthy one available.
type strategy struct {
	name    string
	extract func(string) (string, bool)
}

var strategies = []strategy{
	// Common-case fast path: the model obeyed and sent bare JSON.
	{"direct", func(text string) (string, bool) {
		return text, text != ""
	}},
	// Walk from the first '{' tracking nesting depth until it returns to
	// zero. Robust to nested objects and arrays inside field values, and
	// to narrative text before or after the object.
	{"brace_match", extractBraceMatched},
	// Everything between the first '{' and the last '}'. Tolerates
	// trailing narrative after the object, but a stray closing brace in
	// that narrative corrupts the slice; that is the accepted tradeoff
	// for running it after brace matching, not before.
	{"first_last_brace", extractFirstLastBrace},
}

// Recover extracts a well-formed AnalysisResult from whatever the model
// sent back. It never fails: when every strategy comes up empty, the
// deterministic fallback is synthesized from the original text, so callers
// are never blocked by a malformed reply.
func Recover(raw string) types.AnalysisResult {
	text := stripFences(raw)

	for _, s := range strategies {
		candidate, ok := s.extract(text)
		if !ok {
			continue
		}
		if acceptable(candidate) {
			slog.Debug("recovered analysis record", "strategy", s.name)
			return coerce(candidate)
		}
		// Light-touch syntax repair, then one retry of the same candidate.
		if repaired := repairSyntax(candidate); acceptable(repaired) {
			slog.Debug("recovered analysis record after repair", "strategy", s.name)
			return coerce(repaired)
		}
	}

	slog.Warn("all recovery strategies failed, synthesizing fallback analysis")
	return Fallback(raw)
}

// stripFences removes markdown code fences. Models frequently wrap JSON in
// ``` blocks despite being told not to.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(fenceMarker.ReplaceAllString(text, ""))
}

func extractBraceMatched(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

func extractFirstLastBrace(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// acceptable reports whether the candidate parses as a JSON object carrying
// every required key.
func acceptable(candidate string) bool {
	if !gjson.Valid(candidate) {
		return false
	}
	parsed := gjson.Parse(candidate)
	if !parsed.IsObject() {
		return false
	}
	for _, key := range requiredKeys {
		if !parsed.Get(key).Exists() {
			return false
		}
	}
	return true
}

// repairSyntax fixes the two most common small-model JSON mistakes:
// trailing commas before a closing bracket, and single-quoted strings.
func repairSyntax(candidate string) string {
	repaired := trailingComma.ReplaceAllString(candidate, "$1")
	if !gjson.Valid(repaired) && strings.Contains(repaired, "'") {
		repaired = strings.ReplaceAll(repaired, "'", `"`)
	}
	return repaired
}

// coerce forces a parsed candidate into the canonical shape: list fields
// that are absent or not actually arrays become empty lists, and a
// non-string summary is stringified. A partially-shaped value never
// escapes this boundary.
func coerce(candidate string) types.AnalysisResult {
	parsed := gjson.Parse(candidate)
	return types.AnalysisResult{
		OverallImpression: parsed.Get("overall_impression").String(),
		Strengths:         coerceList(parsed.Get("strengths")),
		Weaknesses:        coerceList(parsed.Get("weaknesses")),
		KeySkills:         coerceList(parsed.Get("key_skills")),
		Recommendations:   coerceList(parsed.Get("recommendations")),
		Source:            types.SourceModel,
	}
}

func coerceList(v gjson.Result) []string {
	if !v.IsArray() {
		return []string{}
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
