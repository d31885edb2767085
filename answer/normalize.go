package answer

import (
	"regexp"
	"strings"
)

// diacriticsReplacer folds the Romanian diacritics to their base Latin letters.
// Uppercase forms are handled by the lowercase pass that precedes replacement.
var diacriticsReplacer = strings.NewReplacer(
	"ă", "a",
	"â", "a",
	"î", "i",
	"ș", "s",
	"ț", "t",
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize canonicalizes text for comparison: lowercase, Romanian diacritics
// folded, everything outside [a-z0-9\s] removed, surrounding whitespace
// trimmed. Empty input yields the empty string. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = diacriticsReplacer.Replace(text)
	text = nonAlphanumericRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
