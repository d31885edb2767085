package answer

import (
	"testing"

	"github.com/pasvio/vitrina/core"
	"github.com/stretchr/testify/assert"
)

func TestMatchFAQ(t *testing.T) {
	faqs := []*core.FAQEntry{
		{Question: "Are produsul garanție?", Answer: "Da, produsul are garanție de 2 ani."},
		{Question: "Cum se curăță pielea?", Answer: "Cu o cârpă umedă și detergent blând."},
		{Question: "Este disponibil pe stoc în mărimea 44?", Answer: "Da, toate mărimile sunt pe stoc."},
	}

	t.Run("question contained in FAQ question", func(t *testing.T) {
		answer, ok := MatchFAQ(Normalize("garanție"), faqs)
		assert.True(t, ok)
		assert.Equal(t, faqs[0].Answer, answer)
	})

	t.Run("FAQ question contained in question", func(t *testing.T) {
		answer, ok := MatchFAQ(Normalize("Bună ziua, cum se curăță pielea, vă rog?"), faqs)
		assert.True(t, ok)
		assert.Equal(t, faqs[1].Answer, answer)
	})

	t.Run("similarity above threshold", func(t *testing.T) {
		// Shares "disponibil", "stoc", "marimea" with the third entry.
		answer, ok := MatchFAQ(Normalize("produsul este disponibil pe stoc marimea dorită?"), faqs)
		assert.True(t, ok)
		assert.Equal(t, faqs[2].Answer, answer)
	})

	t.Run("verbatim match after normalization", func(t *testing.T) {
		for _, faq := range faqs {
			answer, ok := MatchFAQ(Normalize(faq.Question), faqs)
			assert.True(t, ok)
			assert.Equal(t, faq.Answer, answer)
		}
	})

	t.Run("first match wins in FAQ order", func(t *testing.T) {
		duplicated := []*core.FAQEntry{
			{Question: "Are garanție?", Answer: "first"},
			{Question: "Are garanție extinsă?", Answer: "second"},
		}
		answer, ok := MatchFAQ(Normalize("Are garanție?"), duplicated)
		assert.True(t, ok)
		assert.Equal(t, "first", answer)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := MatchFAQ(Normalize("Se poate livra în altă țară?"), faqs)
		assert.False(t, ok)
	})

	t.Run("empty FAQ list", func(t *testing.T) {
		_, ok := MatchFAQ(Normalize("Are garanție?"), nil)
		assert.False(t, ok)
	})

	t.Run("empty normalized question never matches", func(t *testing.T) {
		_, ok := MatchFAQ("", faqs)
		assert.False(t, ok)
	})
}
