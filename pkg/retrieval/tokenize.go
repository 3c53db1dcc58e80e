package retrieval

import (
	"strings"
	"unicode"
)

const punctuation = `,.!?;:()[]{}"'，。！？、；：“”‘’（）【】《》…—·`

// Tokenize splits text on whitespace plus common ASCII and CJK
// punctuation, dropping empty tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(punctuation, r)
	})
}

// Jaccard computes token-set overlap similarity between two token lists.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := map[string]bool{}
	for _, t := range a {
		setA[t] = true
	}
	setB := map[string]bool{}
	for _, t := range b {
		setB[t] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
