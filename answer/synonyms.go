package answer

import "strings"

// synonymGroup maps a canonical concept to its surface variants as they
// appear in product descriptions and customer questions.
type synonymGroup struct {
	concept  string
	variants []string
}

// synonymGroups is evaluated in order so keyword expansion is deterministic.
// Variants mix Romanian and English because descriptions use both.
var synonymGroups = []synonymGroup{
	{"material", []string{"material", "materiale", "fabricat", "realizat", "confectionat"}},
	{"piele", []string{"piele", "leather", "piele naturala", "piele de vita"}},
	{"cauciuc", []string{"cauciuc", "rubber", "talpa", "talpa exterioara"}},
	{"curatare", []string{"curatare", "curat", "spalare", "intretinere", "clean", "washing"}},
	{"marime", []string{"marime", "masura", "size", "sizes", "disponibil"}},
	{"garantie", []string{"garantie", "garantia", "warranty", "garantie de"}},
	{"livrare", []string{"livrare", "livrat", "delivery", "shipping", "trimis"}},
	{"returnare", []string{"returnare", "return", "returnat", "schimb", "exchange"}},
	{"impermeabil", []string{"impermeabil", "waterproof", "rezistent la apa", "apa"}},
	{"iarna", []string{"iarna", "winter", "zapada", "frig", "rece"}},
	{"vara", []string{"vara", "summer", "cald", "caldura"}},
	{"alergare", []string{"alergare", "running", "jogging", "sport", "maraton"}},
	{"hiking", []string{"hiking", "trekking", "drumetie", "outdoor", "montan"}},
}

// ExpandKeywords returns the input keywords plus every variant of each
// synonym group the input touches. A keyword touches a group when it is a
// substring of one of the group's variants or vice versa. The result is
// de-duplicated, preserving first occurrence.
func ExpandKeywords(keywords []string) []string {
	expanded := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))

	add := func(word string) {
		if !seen[word] {
			seen[word] = true
			expanded = append(expanded, word)
		}
	}

	for _, keyword := range keywords {
		add(keyword)
	}

	for _, keyword := range keywords {
		for _, group := range synonymGroups {
			if groupMatches(group, keyword) {
				for _, variant := range group.variants {
					add(variant)
				}
			}
		}
	}

	return expanded
}

func groupMatches(group synonymGroup, keyword string) bool {
	for _, variant := range group.variants {
		if strings.Contains(variant, keyword) || strings.Contains(keyword, variant) {
			return true
		}
	}
	return false
}
