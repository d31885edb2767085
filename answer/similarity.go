package answer

import "strings"

// Similarity computes a coarse lexical overlap ratio in [0,1] between two
// normalized strings: the number of distinct shared tokens divided by the
// larger token count. Tokens are space-separated words longer than two
// characters. The denominator is deliberately max(len(a), len(b)) rather
// than the union size; FAQ matching depends on this exact formula.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	wordsA := splitWords(a)
	wordsB := splitWords(b)

	total := max(len(wordsA), len(wordsB))
	if total == 0 {
		return 0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, word := range wordsA {
		setA[word] = true
	}

	common := 0
	seen := make(map[string]bool, len(wordsB))
	for _, word := range wordsB {
		if setA[word] && !seen[word] {
			seen[word] = true
			common++
		}
	}

	return float64(common) / float64(total)
}

func splitWords(s string) []string {
	parts := strings.Split(s, " ")
	words := parts[:0]
	for _, part := range parts {
		if len(part) > 2 {
			words = append(words, part)
		}
	}
	return words
}
