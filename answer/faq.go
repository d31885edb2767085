package answer

import (
	"strings"

	"github.com/pasvio/vitrina/core"
)

// faqSimilarityThreshold is the minimum word-overlap ratio for an FAQ
// question to count as a match when neither side contains the other.
const faqSimilarityThreshold = 0.6

// MatchFAQ resolves a question directly against the product's FAQ pairs.
// An entry matches when its normalized question contains the normalized
// input question, the reverse containment holds, or their similarity
// exceeds the threshold. Entries are tried in list order and the first
// match wins; no re-ranking across candidates is attempted. Returns the
// stored answer verbatim, or ("", false) when nothing matches.
func MatchFAQ(normalizedQuestion string, faqs []*core.FAQEntry) (string, bool) {
	if normalizedQuestion == "" {
		return "", false
	}

	for _, faq := range faqs {
		normalizedFAQ := Normalize(faq.Question)

		if strings.Contains(normalizedFAQ, normalizedQuestion) ||
			strings.Contains(normalizedQuestion, normalizedFAQ) ||
			Similarity(normalizedQuestion, normalizedFAQ) > faqSimilarityThreshold {
			return faq.Answer, true
		}
	}

	return "", false
}
