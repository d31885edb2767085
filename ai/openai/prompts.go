package openai

import "fmt"

const systemPromptTemplate = `You are a virtual assistant for an online footwear store. Context: %s`

// buildSystemPrompt embeds the product context into the assistant's system
// prompt. The context carries title, description, price, stock and FAQ
// excerpts pre-formatted by the caller.
func buildSystemPrompt(productContext string) string {
	return fmt.Sprintf(systemPromptTemplate, productContext)
}
