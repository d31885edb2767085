package assistant

import (
	"context"
	"log/slog"

	"github.com/pasvio/vitrina/ai"
	"github.com/pasvio/vitrina/answer"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
)

// Assistant answers customer questions about catalog products.
type Assistant struct {
	productRepository storage.ProductRepository
	faqRepository     storage.FAQRepository
	answerer          ai.Answerer
	engine            *answer.Engine
	degraded          DegradedPredicate
	logger            *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assistant) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithEngine sets a custom local answer engine.
func WithEngine(engine *answer.Engine) Option {
	return func(a *Assistant) error {
		if engine == nil {
			engine = answer.NewEngine()
		}
		a.engine = engine
		return nil
	}
}

// WithDegradedPredicate sets a custom predicate for detecting degraded
// external responses. Default matches DefaultDegradedMarkers.
func WithDegradedPredicate(predicate DegradedPredicate) Option {
	return func(a *Assistant) error {
		if predicate == nil {
			predicate = MarkerPredicate(DefaultDegradedMarkers...)
		}
		a.degraded = predicate
		return nil
	}
}

// NewAssistant creates a new assistant.
func NewAssistant(
	productRepository storage.ProductRepository,
	faqRepository storage.FAQRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Assistant, error) {
	if productRepository == nil {
		return nil, ErrProductRepositoryRequired
	}
	if faqRepository == nil {
		return nil, ErrFAQRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	a := &Assistant{
		productRepository: productRepository,
		faqRepository:     faqRepository,
		answerer:          provider.Answerer(),
		engine:            answer.NewEngine(),
		degraded:          MarkerPredicate(DefaultDegradedMarkers...),
		logger:            slog.Default().With("component", "assistant"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Ask answers a question about a product.
// Returns core validation errors for bad input and storage.ErrNotFound for
// an unknown product. Once the product is loaded, Ask always produces an
// answer: external failures degrade to the local engine.
func (a *Assistant) Ask(ctx context.Context, productID core.ID, question string) (string, error) {
	return a.AskWithMonitor(ctx, productID, question, nil)
}

// AskWithMonitor answers a question about a product with monitoring.
// The monitor receives callbacks at each stage of the answering process.
func (a *Assistant) AskWithMonitor(ctx context.Context, productID core.ID, question string, monitor AskMonitor) (string, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(productID, question)

	if err := core.ValidateAsk(productID, question); err != nil {
		return "", err
	}

	product, err := a.productRepository.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	monitor.AfterProductLoad(product)

	// A FAQ read failure degrades to an empty list rather than failing
	// the whole request.
	faqs, err := a.faqRepository.GetFAQsForProduct(ctx, productID)
	if err != nil {
		a.logger.Warn("failed to load FAQ entries, continuing without them",
			"product", productID, "err", err)
		faqs = nil
	}
	monitor.AfterFAQLoad(faqs)

	productContext := BuildProductContext(product, faqs)

	externalAnswer, err := a.answerer.GetAnswer(ctx, question, productContext)
	switch {
	case err != nil:
		a.logger.Warn("external answerer failed, using local logic",
			"product", productID, "err", err)
		monitor.ExternalError(err)
	case a.degraded(externalAnswer):
		a.logger.Info("external answer degraded, using local logic",
			"product", productID)
		monitor.ExternalDegraded(externalAnswer)
	default:
		monitor.ExternalAnswer(externalAnswer)
		monitor.Finish(externalAnswer)
		return externalAnswer, nil
	}

	localAnswer := a.engine.FindAnswer(product, faqs, question)
	monitor.LocalAnswer(localAnswer)
	monitor.Finish(localAnswer)
	return localAnswer, nil
}
