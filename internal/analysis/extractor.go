package analysis

import (
	"log/slog"
	"strings"
)

// ExtractCore trims a sanitized document down to the genuine resume
// content. Candidates often append certificate scans and reference letters
// to the same PDF; those pollute the model's signal and burn context
// budget, so extraction stops at the first line containing a stop phrase
// (case-insensitive substring match) and never exceeds maxWords words.
//
// An empty result is valid: it means the document opened straight into
// non-resume content.
func ExtractCore(doc string, maxWords int, stopPhrases []string) string {
	var kept []string
	wordCount := 0

	for _, line := range strings.Split(doc, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		stopped := false
		for _, phrase := range stopPhrases {
			if strings.Contains(lower, phrase) {
				slog.Debug("stopping at non-resume section", "line", truncateLine(line, 50))
				stopped = true
				break
			}
		}
		if stopped {
			break
		}

		words := strings.Fields(line)
		if wordCount+len(words) > maxWords {
			remaining := maxWords - wordCount
			kept = append(kept, strings.Join(words[:remaining], " "))
			break
		}

		kept = append(kept, line)
		wordCount += len(words)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func truncateLine(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
