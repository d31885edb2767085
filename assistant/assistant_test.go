package assistant

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pasvio/vitrina/ai/mock"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
	"github.com/pasvio/vitrina/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (storage.ProductRepository, storage.FAQRepository) {
	t.Helper()
	productRepo, faqRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		faqRepo.Close()
		productRepo.Close()
		backend.Close()
	})
	return productRepo, faqRepo
}

func seedProduct(t *testing.T, productRepo storage.ProductRepository, faqRepo storage.FAQRepository) *core.Product {
	t.Helper()
	ctx := context.Background()

	added, err := productRepo.AddProducts(ctx, &core.Product{
		Title:       "Ghete de iarnă",
		Description: "Ghete robuste pentru sezonul rece. Fabricate din piele naturală impermeabilă.",
		Price:       349.99,
		Rating:      4.6,
		Stock:       12,
		Category:    "Boots",
	})
	require.NoError(t, err)

	_, err = faqRepo.AddFAQs(ctx, &core.FAQEntry{
		ProductId: added[0].Id,
		Question:  "Cât durează livrarea?",
		Answer:    "Livrarea durează 2-4 zile lucrătoare.",
	})
	require.NoError(t, err)

	return added[0]
}

func TestNewAssistant(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		a, err := NewAssistant(productRepo, faqRepo, provider)
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("with custom logger", func(t *testing.T) {
		a, err := NewAssistant(productRepo, faqRepo, provider, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("nil product repository", func(t *testing.T) {
		_, err := NewAssistant(nil, faqRepo, provider)
		assert.Equal(t, ErrProductRepositoryRequired, err)
	})

	t.Run("nil FAQ repository", func(t *testing.T) {
		_, err := NewAssistant(productRepo, nil, provider)
		assert.Equal(t, ErrFAQRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewAssistant(productRepo, faqRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestAsk_Validation(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProvider())
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("empty question", func(t *testing.T) {
		_, err := a.Ask(ctx, 1, "   ")
		assert.ErrorIs(t, err, core.ErrEmptyQuestion)
	})

	t.Run("zero product ID", func(t *testing.T) {
		_, err := a.Ask(ctx, 0, "Are garanție?")
		assert.ErrorIs(t, err, core.ErrInvalidProductID)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := a.Ask(ctx, 999999, "Are garanție?")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestAsk_ExternalAnswer(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	product := seedProduct(t, productRepo, faqRepo)

	answerer := mock.NewMockAnswerer()
	answerer.GetAnswerFunc = func(_ context.Context, question, productContext string) (string, error) {
		// The product context must reach the external service.
		assert.Contains(t, productContext, "Produs: Ghete de iarnă")
		assert.Contains(t, productContext, "Q: Cât durează livrarea?")
		return "Răspuns generat extern.", nil
	}

	a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProviderWithAnswerer(answerer))
	require.NoError(t, err)

	got, err := a.Ask(context.Background(), product.Id, "Cum se comportă pe gheață?")
	require.NoError(t, err)
	assert.Equal(t, "Răspuns generat extern.", got)
	assert.Equal(t, 1, answerer.CallCount())
}

func TestAsk_FallsBackOnError(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	product := seedProduct(t, productRepo, faqRepo)

	answerer := mock.NewMockAnswerer()
	answerer.GetAnswerFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("connection refused")
	}

	a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProviderWithAnswerer(answerer))
	require.NoError(t, err)

	t.Run("FAQ answer from local chain", func(t *testing.T) {
		got, err := a.Ask(context.Background(), product.Id, "Cât durează livrarea?")
		require.NoError(t, err)
		assert.Equal(t, "Livrarea durează 2-4 zile lucrătoare.", got)
	})

	t.Run("intent answer from local chain", func(t *testing.T) {
		got, err := a.Ask(context.Background(), product.Id, "Are garanție?")
		require.NoError(t, err)
		assert.Contains(t, got, "garanție de 2 ani")
	})

	t.Run("cancellation is not surfaced", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		answerer.GetAnswerFunc = func(ctx context.Context, _, _ string) (string, error) {
			return "", ctx.Err()
		}

		got, err := a.Ask(cancelled, product.Id, "Are garanție?")
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	})
}

func TestAsk_FallsBackOnDegradedAnswer(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	product := seedProduct(t, productRepo, faqRepo)

	degraded := []string{
		"Serviciul AI nu este disponibil momentan.",
		"Serviciul nu este configurat corect.",
		"Quota exceeded for this billing period.",
		"AI service quota has been exceeded.",
		"Rate Limit reached, retry later.",
		"Serviciul este temporar indisponibil.",
	}

	for _, response := range degraded {
		answerer := mock.NewMockAnswerer()
		answerer.GetAnswerFunc = func(context.Context, string, string) (string, error) {
			return response, nil
		}

		a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProviderWithAnswerer(answerer))
		require.NoError(t, err)

		got, err := a.Ask(context.Background(), product.Id, "Are garanție?")
		require.NoError(t, err)
		assert.NotEqual(t, response, got)
		assert.Contains(t, got, "garanție de 2 ani")
	}
}

func TestAsk_MarkerMatchingIsCaseSensitive(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	product := seedProduct(t, productRepo, faqRepo)

	answerer := mock.NewMockAnswerer()
	answerer.GetAnswerFunc = func(context.Context, string, string) (string, error) {
		// "rate limit" in lowercase is a legitimate answer, not a marker.
		return "Produsul nu are un rate limit de utilizare.", nil
	}

	a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProviderWithAnswerer(answerer))
	require.NoError(t, err)

	got, err := a.Ask(context.Background(), product.Id, "Are limitări?")
	require.NoError(t, err)
	assert.Equal(t, "Produsul nu are un rate limit de utilizare.", got)
}

func TestAskWithMonitor(t *testing.T) {
	productRepo, faqRepo := setupRepos(t)
	product := seedProduct(t, productRepo, faqRepo)

	answerer := mock.NewMockAnswerer()
	answerer.GetAnswerFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("boom")
	}

	a, err := NewAssistant(productRepo, faqRepo, mock.NewMockProviderWithAnswerer(answerer))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	got, err := a.AskWithMonitor(context.Background(), product.Id, "Are garanție?", monitor)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.NotNil(t, monitor.product)
	assert.Len(t, monitor.faqs, 1)
	assert.Error(t, monitor.externalErr)
	assert.Equal(t, got, monitor.local)
	assert.Equal(t, got, monitor.finished)
}

type recordingMonitor struct {
	started     bool
	product     *core.Product
	faqs        []*core.FAQEntry
	externalErr error
	local       string
	finished    string
}

var _ AskMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(core.ID, string)                 { m.started = true }
func (m *recordingMonitor) AfterProductLoad(p *core.Product)      { m.product = p }
func (m *recordingMonitor) AfterFAQLoad(entries []*core.FAQEntry) { m.faqs = entries }
func (m *recordingMonitor) ExternalAnswer(string)                 {}
func (m *recordingMonitor) ExternalDegraded(string)               {}
func (m *recordingMonitor) ExternalError(err error)               { m.externalErr = err }
func (m *recordingMonitor) LocalAnswer(answer string)             { m.local = answer }
func (m *recordingMonitor) Finish(answer string)                  { m.finished = answer }
