package answer

import (
	"log/slog"

	"github.com/pasvio/vitrina/core"
)

// FallbackAnswer is returned when no local stage can produce anything
// specific. Ask never returns an empty answer.
const FallbackAnswer = "Momentan nu avem detalii specifice despre acest aspect. Vă recomandăm să ne contactați direct pentru informații suplimentare despre produs. Suntem aici să vă ajutăm!"

// Engine resolves questions locally from a product snapshot. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewEngine creates a new local answer engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.Default().With("component", "answer-engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FindAnswer resolves the question against the product through the local
// chain: FAQ match, intent classification, relevance-scored sentence
// extraction, fixed fallback. It is a total function of its input: it
// always returns a non-empty answer and never fails.
func (e *Engine) FindAnswer(product *core.Product, faqs []*core.FAQEntry, question string) string {
	normalizedQuestion := Normalize(question)

	if answer, ok := MatchFAQ(normalizedQuestion, faqs); ok {
		e.logger.Debug("question resolved from FAQ", "product", product.Id)
		return answer
	}

	keywords := ExtractKeywords(normalizedQuestion)

	if answer, ok := ClassifyIntent(product, normalizedQuestion); ok {
		e.logger.Debug("question resolved by intent rule", "product", product.Id)
		return answer
	}

	if answer := ExtractRelevant(product.Description, normalizedQuestion, keywords); answer != "" {
		e.logger.Debug("question resolved from description", "product", product.Id)
		return answer
	}

	e.logger.Debug("no local match, using fallback answer", "product", product.Id)
	return FallbackAnswer
}
