package answer

import (
	"strings"

	"github.com/pasvio/vitrina/core"
)

// Canned answers for recognized question intents. Wording matches the
// store's customer-service copy and is returned as-is.
const (
	warrantyAnswer = "Da, toate produsele noastre beneficiază de garanție de 2 ani pentru defecte de fabricație. Pentru detalii suplimentare, vă rugăm să ne contactați."
	childrenAnswer = "Acest produs este recomandat pentru adulți. Pentru produse potrivite copiilor, vă recomandăm să consultați categoria dedicată sau să ne contactați pentru recomandări specifice."
	sizeAnswer     = "Produsele noastre sunt disponibile în mărimi standard de la 36 la 46. Pentru mărimi speciale sau consultanță personalizată, vă rugăm să ne contactați."
	runningYes     = "Da, acest produs este special proiectat pentru alergare și oferă suport excelent și amortizare pentru activități sportive."
	runningNo      = "Acest produs este proiectat pentru uz zilnic și confort. Pentru alergare, recomandăm produsele din categoria Running Shoes care oferă suport specializat."
	cleaningAnswer = "Recomandăm curățarea cu o cârpă umedă și un detergent blând. Evitați mașina de spălat și uscarea la soare direct pentru a menține calitatea produsului."
	returnAnswer   = "Puteți returna produsul în termen de 14 zile de la cumpărare, în condiții originale, cu bonul fiscal. Pentru detalii despre procesul de returnare, vă rugăm să ne contactați."
	leatherAnswer  = "Acest produs este confecționat din piele naturală de înaltă calitate, ceea ce asigură durabilitate și confort pe termen lung."
	textileAnswer  = "Acest produs este confecționat din materiale textile de calitate, oferind confort și respirabilitate excelentă."
)

// intentRule is a keyword-triggered canned-answer rule. A rule fires when
// any of its keywords occurs as a substring of the normalized question.
// The resolver may decline (ok=false), in which case classification
// continues with the remaining rules.
type intentRule struct {
	name     string
	keywords []string
	resolve  func(product *core.Product, normalizedQuestion string) (string, bool)
}

// intentRules is evaluated in fixed priority order; apart from the material
// rule, the first rule whose keywords hit short-circuits the rest.
var intentRules = []intentRule{
	{
		name:     "warranty",
		keywords: []string{"garanție", "garantie", "warranty", "garantia"},
		resolve: func(*core.Product, string) (string, bool) {
			return warrantyAnswer, true
		},
	},
	{
		name:     "children",
		keywords: []string{"copii", "children", "child", "kid", "kids"},
		resolve: func(*core.Product, string) (string, bool) {
			return childrenAnswer, true
		},
	},
	{
		name:     "size",
		keywords: []string{"măsură", "masura", "size", "mărime", "marime", "sizes"},
		resolve: func(*core.Product, string) (string, bool) {
			return sizeAnswer, true
		},
	},
	{
		name:     "running",
		keywords: []string{"alergare", "running", "jogging", "sport"},
		resolve: func(product *core.Product, _ string) (string, bool) {
			if strings.Contains(strings.ToLower(product.Category), "running") {
				return runningYes, true
			}
			return runningNo, true
		},
	},
	{
		name:     "cleaning",
		keywords: []string{"curățare", "curatare", "clean", "washing", "spălare", "spalare"},
		resolve: func(*core.Product, string) (string, bool) {
			return cleaningAnswer, true
		},
	},
	{
		name:     "returns",
		keywords: []string{"returnare", "return", "schimb", "exchange"},
		resolve: func(*core.Product, string) (string, bool) {
			return returnAnswer, true
		},
	},
	{
		name:     "material",
		keywords: []string{"material", "materials", "leather", "piele", "canvas", "textil", "cauciuc", "rubber"},
		resolve:  resolveMaterial,
	},
}

// resolveMaterial first tries to extract a material-specific excerpt from
// the description, then falls back to canned answers keyed on material
// mentions. Declines entirely when the description gives nothing to work
// with, letting the generic extractor take over.
func resolveMaterial(product *core.Product, normalizedQuestion string) (string, bool) {
	if info := extractMaterialInfo(product.Description, normalizedQuestion); info != "" {
		return info, true
	}

	normalizedDesc := Normalize(product.Description)
	if strings.Contains(normalizedDesc, "leather") || strings.Contains(normalizedDesc, "piele") {
		return leatherAnswer, true
	}
	if strings.Contains(normalizedDesc, "canvas") || strings.Contains(normalizedDesc, "textil") {
		return textileAnswer, true
	}

	return "", false
}

// ClassifyIntent runs the ordered intent-rule table against the normalized
// question. Returns ("", false) when no rule produces an answer.
func ClassifyIntent(product *core.Product, normalizedQuestion string) (string, bool) {
	for _, rule := range intentRules {
		if !containsAny(normalizedQuestion, rule.keywords) {
			continue
		}
		if answer, ok := rule.resolve(product, normalizedQuestion); ok {
			return answer, true
		}
	}
	return "", false
}
