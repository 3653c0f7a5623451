package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSanitizer() *Sanitizer {
	return New([]string{"education", "experience", "skills", "summary"})
}

func TestSanitize_RemovesNonPrintable(t *testing.T) {
	s := testSanitizer()
	out := s.Sanitize([]string{"Jane Doe\x07 workedﬁ here", "second\tpage text"})

	for _, r := range out {
		assert.True(t, r == '\n' || (r >= 0x20 && r <= 0x7E),
			"non-printable rune %q in output", r)
	}
}

func TestSanitize_OnlyNonPrintableInput(t *testing.T) {
	s := testSanitizer()
	out := s.Sanitize([]string{"\x00\x01\x02", "☃é"})
	assert.Empty(t, out)
}

func TestSanitize_RepairsHyphenBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "word broken across lines",
			input: "software develop-\nment experience",
			want:  "development",
		},
		{
			name:  "hyphen before non-word content stays",
			input: "rating of 9-\n- next item here",
			want:  "9-",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testSanitizer().Sanitize([]string{tt.input})
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSanitize_CollapsesHorizontalWhitespace(t *testing.T) {
	out := testSanitizer().Sanitize([]string{"  Jane   Doe\t\tEngineer  "})
	assert.Equal(t, "Jane Doe Engineer", out)
}

func TestSanitize_DropsJunkLines(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe worked here",
		"-----------------",
		"42",
		"x",
		"real content line",
	}, "\n")

	out := testSanitizer().Sanitize([]string{input})
	assert.NotContains(t, out, "-----")
	assert.NotContains(t, out, "42")
	assert.Contains(t, out, "Jane Doe worked here")
	assert.Contains(t, out, "real content line")

	for _, line := range strings.Split(out, "\n") {
		assert.NotEqual(t, "x", line)
	}
}

func TestSanitize_InsertsBlankLineBeforeHeaders(t *testing.T) {
	input := "Jane Doe has ten years of experience in backend work.\nEDUCATION\nBS Computer Science"

	out := testSanitizer().Sanitize([]string{input})
	assert.Contains(t, out, "backend work.\n\nEDUCATION")
}

func TestSanitize_NoBlankLineForHeaderAtStart(t *testing.T) {
	out := testSanitizer().Sanitize([]string{"SUMMARY\nExperienced engineer."})
	assert.True(t, strings.HasPrefix(out, "SUMMARY"))
}

func TestSanitize_VocabularyHeaderWithColon(t *testing.T) {
	// lower-case vocabulary match with trailing punctuation stripped
	input := "worked on many backend systems over the years at a bank.\nskills:\ngo, sql"
	out := testSanitizer().Sanitize([]string{input})
	assert.Contains(t, out, "bank.\n\nskills:")
}

func TestSanitize_CollapsesBlankRuns(t *testing.T) {
	input := "first line of text\n\n\n\n\nsecond line of text"
	out := testSanitizer().Sanitize([]string{input})
	assert.NotContains(t, out, "\n\n\n")
	assert.Contains(t, out, "first line of text\n\nsecond line of text")
}

func TestSanitize_TrimsResult(t *testing.T) {
	out := testSanitizer().Sanitize([]string{"\n\n  some resume text here  \n\n"})
	assert.Equal(t, out, strings.TrimSpace(out))
}

func TestSanitize_EmptyInput(t *testing.T) {
	s := testSanitizer()
	assert.Empty(t, s.Sanitize(nil))
	assert.Empty(t, s.Sanitize([]string{}))
	assert.Empty(t, s.Sanitize([]string{"", ""}))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"software develop-\nment experience\n\n\nEDUCATION\nBS Degree in CS"},
		{"Jane Doe worked here", "EXPERIENCE\nbuilt many things over the years"},
		{"plain single line of resume text"},
	}
	s := testSanitizer()
	for _, pages := range inputs {
		once := s.Sanitize(pages)
		twice := s.Sanitize([]string{once})
		require.Equal(t, once, twice, "sanitize must be idempotent on its own output")
	}
}
