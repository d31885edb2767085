package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pasvio/vitrina/core"
)

// maxContextFAQs caps how many FAQ entries are embedded in the prompt context.
const maxContextFAQs = 5

// BuildProductContext formats a product snapshot for the external answerer's
// system prompt. FAQ entries beyond maxContextFAQs are dropped.
func BuildProductContext(product *core.Product, faqs []*core.FAQEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Produs: %s\n", product.Title)
	fmt.Fprintf(&b, "Descriere: %s\n", product.Description)
	fmt.Fprintf(&b, "Preț: %s RON\n", strconv.FormatFloat(product.Price, 'f', -1, 64))
	fmt.Fprintf(&b, "Stoc: %d bucăți\n", product.Stock)

	if product.Category != "" {
		fmt.Fprintf(&b, "Categorie: %s\n", product.Category)
	}

	if len(faqs) > 0 {
		b.WriteString("\nÎntrebări frecvente:\n")
		for i, faq := range faqs {
			if i >= maxContextFAQs {
				break
			}
			fmt.Fprintf(&b, "Q: %s\n", faq.Question)
			fmt.Fprintf(&b, "A: %s\n", faq.Answer)
		}
	}

	return b.String()
}
