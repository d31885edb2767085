package answer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// maxAnswerLength is the truncation limit for extracted answers, in runes.
	maxAnswerLength = 300
	// minPeriodCut is the minimum position of a sentence boundary for
	// truncation to cut at the period instead of appending an ellipsis.
	minPeriodCut = 200
)

// Sentence scoring weights. Longer keywords are stronger signals; words
// lifted straight from the question are stronger still.
const (
	longKeywordWeight   = 3.0
	mediumKeywordWeight = 2.0
	shortKeywordWeight  = 1.0
	repeatBonus         = 0.5
	questionWordWeight  = 1.5
	lengthBonus         = 0.5
	minSentenceScore    = 1.0
)

// scoredSentence is an ephemeral, per-request scoring record for one
// description sentence.
type scoredSentence struct {
	text       string
	normalized string
	score      float64
	index      int
}

// splitSentences splits free text into sentences at `.`, `!` or `?`
// followed by whitespace. The terminator stays with its sentence; a
// trailing fragment without one still counts. Blank fragments are dropped
// and the rest trimmed.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if (r == '.' || r == '!' || r == '?') &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// ExtractRelevant selects the best one or two description sentences for the
// question. Keywords are synonym-expanded, every sentence is scored against
// them and against the question's own words, and the top results are merged
// when they sit close together in the original text. The result always ends
// with sentence punctuation and never exceeds the truncation limit. Returns
// the empty string when no sentence qualifies.
func ExtractRelevant(description, normalizedQuestion string, keywords []string) string {
	if description == "" || len(keywords) == 0 {
		return ""
	}

	sentences := splitSentences(description)
	if len(sentences) == 0 {
		return ""
	}

	expanded := ExpandKeywords(keywords)

	questionWords := make([]string, 0)
	for _, word := range strings.Fields(normalizedQuestion) {
		if len(word) > 3 {
			questionWords = append(questionWords, word)
		}
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for index, sentence := range sentences {
		normalized := Normalize(sentence)
		score := scoreSentence(sentence, normalized, expanded, questionWords)
		if score > 0 {
			scored = append(scored, scoredSentence{
				text:       sentence,
				normalized: normalized,
				score:      score,
				index:      index,
			})
		}
	}

	if len(scored) == 0 {
		return ""
	}

	// Ties keep original description order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := make([]scoredSentence, 0, 2)
	for _, s := range scored {
		if s.score >= minSentenceScore {
			top = append(top, s)
		}
		if len(top) == 2 {
			break
		}
	}

	if len(top) == 0 {
		return ""
	}

	result := top[0].text
	if len(top) == 2 {
		first, second := top[0], top[1]
		if first.index > second.index {
			first, second = second, first
		}
		// Merge only sentences that sit close together in the description.
		if second.index-first.index <= 2 {
			result = strings.TrimSpace(first.text + " " + second.text)
		}
	}

	result = ensureTerminated(result)
	return truncate(result)
}

func scoreSentence(sentence, normalized string, expandedKeywords, questionWords []string) float64 {
	var score float64

	for _, keyword := range expandedKeywords {
		count := strings.Count(normalized, keyword)
		if count == 0 {
			continue
		}

		switch {
		case len(keyword) > 4:
			score += longKeywordWeight
		case len(keyword) > 2:
			score += mediumKeywordWeight
		default:
			score += shortKeywordWeight
		}

		if count > 1 {
			score += repeatBonus
		}
	}

	for _, word := range questionWords {
		if strings.Contains(normalized, word) {
			score += questionWordWeight
		}
	}

	if n := utf8.RuneCountInString(sentence); n > 30 && n < 200 {
		score += lengthBonus
	}

	return score
}

// ensureTerminated appends a period unless the text already ends with
// sentence punctuation.
func ensureTerminated(text string) string {
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text
	}
	return text + "."
}

// truncate cuts answers over the length limit, preferring to end on the last
// sentence boundary when one falls late enough, otherwise trimming and
// appending an ellipsis.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxAnswerLength {
		return text
	}

	truncated := runes[:maxAnswerLength]
	if lastPeriod := lastIndexRune(truncated, '.'); lastPeriod > minPeriodCut {
		return string(truncated[:lastPeriod+1])
	}

	return strings.TrimRight(string(truncated), " \t\n") + "..."
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// materialKeywords is the fixed probe set for material-specific extraction,
// independent of whatever keywords the question itself contains.
var materialKeywords = []string{
	"piele", "leather", "canvas", "textil", "cauciuc", "rubber",
	"material", "materials", "eva", "sintetic", "synthetic",
	"premium", "calitate", "fabricat", "realizat", "confectionat",
}

// extractMaterialInfo runs the relevance extractor with the fixed material
// keyword set instead of the question's keywords.
func extractMaterialInfo(description, normalizedQuestion string) string {
	if description == "" {
		return ""
	}
	return ExtractRelevant(description, normalizedQuestion, materialKeywords)
}
