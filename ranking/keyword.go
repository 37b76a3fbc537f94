package ranking

import "strings"

// KeywordMatch returns the overlap ratio between two comma separated keyword
// lists. Tokens are lowercased and trimmed, and a pair counts as a match when
// the tokens are equal or one contains the other as a substring. Every
// matching pair is counted, so several tokens on one side can each match the
// same token on the other side and the ratio can exceed 1 for heavily
// overlapping lists. Callers rank on relative magnitude only and must not
// assume a strict [0, 1] bound.
func KeywordMatch(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	aWords := splitKeywords(a)
	bWords := splitKeywords(b)

	matches := 0
	for _, aw := range aWords {
		for _, bw := range bWords {
			if aw == bw || strings.Contains(bw, aw) || strings.Contains(aw, bw) {
				matches++
			}
		}
	}

	longer := len(aWords)
	if len(bWords) > longer {
		longer = len(bWords)
	}
	return float64(matches) / float64(longer)
}

func splitKeywords(s string) []string {
	words := strings.Split(strings.ToLower(s), ",")
	for i := range words {
		words[i] = strings.TrimSpace(words[i])
	}
	return words
}
