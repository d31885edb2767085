package answer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "basic split",
			input: "Pantofi comozi. Fabricați din piele. Livrare gratuită.",
			want:  []string{"Pantofi comozi.", "Fabricați din piele.", "Livrare gratuită."},
		},
		{
			name:  "mixed terminators",
			input: "Sunt impermeabili! Chiar sunt? Da.",
			want:  []string{"Sunt impermeabili!", "Chiar sunt?", "Da."},
		},
		{
			name:  "trailing fragment without terminator",
			input: "Prima propoziție. A doua fără punct",
			want:  []string{"Prima propoziție.", "A doua fără punct"},
		},
		{
			name:  "period not followed by whitespace stays inside",
			input: "Varianta 2.0 este mai bună. Recomandat.",
			want:  []string{"Varianta 2.0 este mai bună.", "Recomandat."},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \n ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitSentences(tt.input))
		})
	}
}

func TestExtractRelevant(t *testing.T) {
	t.Run("selects the keyword-bearing sentence", func(t *testing.T) {
		description := "Pantofi comozi. Fabricați din piele naturală premium. Livrare gratuită."
		got := ExtractRelevant(description, Normalize("din ce material este făcut"), []string{"piele"})
		assert.Equal(t, "Fabricați din piele naturală premium.", got)
	})

	t.Run("result always ends with sentence punctuation", func(t *testing.T) {
		description := "Rezistenți la apă și impermeabili pentru sezonul de iarnă"
		got := ExtractRelevant(description, "impermeabil", []string{"impermeabil"})
		assert.Equal(t, "Rezistenți la apă și impermeabili pentru sezonul de iarnă.", got)
	})

	t.Run("adjacent top sentences are merged in original order", func(t *testing.T) {
		description := "Fabricați din piele naturală. Căptușeala interioară este tot din piele moale. Preț corect."
		got := ExtractRelevant(description, "piele", []string{"piele"})
		assert.Equal(t, "Fabricați din piele naturală. Căptușeala interioară este tot din piele moale.", got)
	})

	t.Run("distant second sentence is dropped", func(t *testing.T) {
		description := "Fabricați din piele naturală premium. Talpă flexibilă. Închidere cu șiret. Căptușeală textilă. Interior căptușit cu piele moale naturală."
		got := ExtractRelevant(description, "piele", []string{"piele"})
		// Positions 0 and 4 are too far apart to merge; only the best survives.
		assert.NotContains(t, got, "Talpă flexibilă")
		assert.True(t, got == "Fabricați din piele naturală premium." ||
			got == "Interior căptușit cu piele moale naturală.")
	})

	t.Run("empty description", func(t *testing.T) {
		assert.Empty(t, ExtractRelevant("", "piele", []string{"piele"}))
	})

	t.Run("no keywords", func(t *testing.T) {
		assert.Empty(t, ExtractRelevant("Pantofi din piele.", "piele", nil))
	})

	t.Run("no qualifying sentence", func(t *testing.T) {
		assert.Empty(t, ExtractRelevant("Pantofi comozi. Livrare rapidă.", Normalize("garanție"), []string{"garantie"}))
	})
}

func TestExtractRelevant_Truncation(t *testing.T) {
	t.Run("cuts at the last period past the threshold", func(t *testing.T) {
		first := "Pantofii din piele " + strings.Repeat("foarte ", 30) + "durabili."
		second := "Talpa din piele ofera amortizare excelenta pentru utilizare zilnica."
		description := first + " " + second

		got := ExtractRelevant(description, "piele", []string{"piele"})
		assert.Equal(t, first, got)
	})

	t.Run("appends ellipsis when no late period exists", func(t *testing.T) {
		long := "Pantofi din piele " + strings.Repeat("confortabili ", 25) + "pentru utilizare"
		got := ExtractRelevant(long, "piele", []string{"piele"})

		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, utf8.RuneCountInString(got), maxAnswerLength+3)
	})
}
