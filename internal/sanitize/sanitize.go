// Package sanitize turns raw, layout-derived PDF text into a clean,
// section-aware plain-text document. The passes are ordered and not
// reorderable: each one relies on the invariants the previous pass
// established.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonPrintable = regexp.MustCompile(`[^\x20-\x7E\n]`)
	hyphenBreak  = regexp.MustCompile(`(\w)-\n(\w)`)
	horizSpace   = regexp.MustCompile(`[ \t]+`)
	junkLine     = regexp.MustCompile(`^[\W\d\s]+$`)
)

const (
	headerLenCap = 60
	minLineLen   = 1
)

// Sanitizer cleans extracted page text. The header vocabulary is matched
// against lower-cased lines with trailing list punctuation stripped.
type Sanitizer struct {
	headers map[string]struct{}
}

func New(sectionHeaders []string) *Sanitizer {
	headers := make(map[string]struct{}, len(sectionHeaders))
	for _, h := range sectionHeaders {
		headers[strings.ToLower(h)] = struct{}{}
	}
	return &Sanitizer{headers: headers}
}

// Sanitize joins the per-page texts and applies the cleaning passes. It
// never fails; malformed input is coerced best-effort, and empty input
// yields an empty string.
func (s *Sanitizer) Sanitize(pages []string) string {
	text := strings.Join(pages, "\n")
	if text == "" {
		return ""
	}

	// Pass 1: printable coercion. Strip invalid UTF-8, then blank out
	// anything outside printable ASCII so the later regex passes never see
	// font noise.
	text = strings.ToValidUTF8(text, "")
	text = nonPrintable.ReplaceAllString(text, " ")

	// Pass 2: rejoin words broken across a line wrap ("devel-" + "opment").
	text = hyphenBreak.ReplaceAllString(text, "$1$2")

	// Pass 3: per-line horizontal whitespace collapse. Blank lines survive
	// as empty strings; pass 5 needs them.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizSpace.ReplaceAllString(line, " "))
	}

	// Pass 4: drop page-number and rule-line artifacts.
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			cleaned = append(cleaned, "")
			continue
		}
		if junkLine.MatchString(line) {
			continue
		}
		if len(line) <= minLineLen {
			continue
		}
		cleaned = append(cleaned, line)
	}

	// Pass 5: one blank line before each section header.
	spaced := make([]string, 0, len(cleaned))
	for i, line := range cleaned {
		if s.isHeader(line) && i > 0 && len(spaced) > 0 && spaced[len(spaced)-1] != "" {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, line)
	}

	// Pass 6: collapse runs of blank lines to at most one.
	final := make([]string, 0, len(spaced))
	blanks := 0
	for _, line := range spaced {
		if line == "" {
			blanks++
			if blanks <= 1 {
				final = append(final, line)
			}
			continue
		}
		blanks = 0
		final = append(final, line)
	}

	return strings.TrimSpace(strings.Join(final, "\n"))
}

// isHeader classifies a line as a section header candidate: short, not
// ending in sentence punctuation, and either shouty, title-cased, or in the
// known vocabulary.
func (s *Sanitizer) isHeader(line string) bool {
	if len(line) >= headerLenCap {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ",") || strings.HasSuffix(line, ";") {
		return false
	}
	lower := strings.ToLower(line)
	lowerClean := strings.TrimRight(lower, ":-•–— ")
	if _, ok := s.headers[lower]; ok {
		return true
	}
	if _, ok := s.headers[lowerClean]; ok {
		return true
	}
	return isUpper(line) || isTitle(line)
}

// isUpper reports whether the line contains letters and none of them are
// lower case.
func isUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitle reports whether every word starts with an upper-case letter and
// carries no further upper-case letters, e.g. "Work Experience".
func isTitle(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	sawCased := false
	for _, word := range words {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				first = true
				continue
			}
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				sawCased = true
				first = false
				continue
			}
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return sawCased
}
