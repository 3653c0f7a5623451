// Package keywords computes simple frequency statistics over a document:
// the ten most frequent non-stopword words, the total word count, and the
// number of unique non-stopword words.
package keywords

import (
	"sort"
	"strings"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

const topN = 10

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {}, "of": {},
	"a": {}, "that": {}, "with": {}, "for": {}, "as": {}, "on": {},
	"are": {}, "by": {}, "this": {}, "be": {},
}

// Analyze lowercases the text, strips punctuation, drops stopwords, and
// counts what remains. Ties are broken alphabetically so the output is
// stable.
func Analyze(text string) types.KeywordStats {
	words := strings.Fields(strings.Map(stripPunct, strings.ToLower(text)))

	counts := make(map[string]int)
	for _, w := range words {
		if _, skip := stopwords[w]; skip {
			continue
		}
		counts[w]++
	}

	ranked := make([]types.KeywordFrequency, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, types.KeywordFrequency{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return types.KeywordStats{
		Keywords:    ranked,
		WordCount:   len(words),
		UniqueWords: len(counts),
	}
}

// stripPunct blanks ASCII punctuation the way the keyword counter wants it:
// removed entirely, not turned into word boundaries.
func stripPunct(r rune) rune {
	if strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r) {
		return -1
	}
	return r
}
