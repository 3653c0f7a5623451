package analysis

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

const minStrengths = 3

// Fallback builds a deterministic analysis from marker substrings in the
// source text. This is a degraded-mode contract, not a quality contract:
// the content is generic, but the record shape is always complete, so the
// workflow never dead-ends on an unparseable model reply.
func Fallback(source string) types.AnalysisResult {
	slog.Info("creating fallback analysis")

	lower := strings.ToLower(source)
	wordCount := len(strings.Fields(source))

	hasSkills := strings.Contains(lower, "skill")
	hasExperience := strings.Contains(lower, "experience") || strings.Contains(lower, "worked")
	hasEducation := strings.Contains(lower, "education") ||
		strings.Contains(lower, "degree") ||
		strings.Contains(lower, "university")

	var strengths []string
	if hasEducation {
		strengths = append(strengths, "Strong educational background")
	}
	if hasExperience {
		strengths = append(strengths, "Demonstrated professional experience")
	}
	if hasSkills {
		strengths = append(strengths, "Technical skill proficiency")
	}
	if len(strengths) < minStrengths {
		strengths = append(strengths, "Well-documented background")
	}

	var weaknesses []string
	if strings.Contains(lower, "no experience") || wordCount < 100 {
		weaknesses = append(weaknesses, "Limited work history")
	} else {
		weaknesses = append(weaknesses, "Consider highlighting recent achievements")
	}
	if !hasEducation {
		weaknesses = append(weaknesses, "Education section could be expanded")
	}

	return types.AnalysisResult{
		OverallImpression: fmt.Sprintf(
			"Candidate with %d words of documented experience. Resume demonstrates professional background across multiple areas.",
			wordCount),
		Strengths:  strengths,
		Weaknesses: weaknesses,
		KeySkills: []string{
			"Communication", "Problem-solving", "Team collaboration", "Technical proficiency",
		},
		Recommendations: []string{
			"Add quantifiable achievements to each position",
			"Include specific project examples and results",
			"Highlight technical skills and tools mastered",
		},
		Source: types.SourceFallback,
	}
}
