package answer

import "strings"

// Bilingual stop-word list: Romanian and English articles, prepositions,
// conjunctions and interrogatives that carry no matching signal.
var stopWords = map[string]bool{
	"este": true, "sunt": true, "are": true, "cum": true, "ce": true,
	"care": true, "pentru": true, "cu": true, "de": true, "la": true,
	"in": true, "pe": true, "si": true, "sau": true,
	"the": true, "is": true, "how": true, "what": true, "which": true,
	"for": true, "with": true, "of": true, "to": true, "on": true,
	"and": true, "or": true,
}

// ExtractKeywords splits normalized text into content-bearing tokens:
// whitespace-separated words that are not stop-words and are longer than
// two characters. Input order is preserved for deterministic output.
func ExtractKeywords(normalizedText string) []string {
	words := strings.Fields(normalizedText)
	keywords := make([]string, 0, len(words))

	for _, word := range words {
		if stopWords[word] || len(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
	}

	return keywords
}

// containsAny reports whether any of the keywords occurs as a substring of text.
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
