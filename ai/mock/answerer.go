package mock

import (
	"context"
	"fmt"

	"github.com/pasvio/vitrina/ai"
)

// MockAnswerer is a test double for ai.Answerer.
// It allows custom behavior injection via function fields.
type MockAnswerer struct {
	// GetAnswerFunc is called by GetAnswer if set.
	// If nil, a deterministic canned answer is returned.
	GetAnswerFunc func(ctx context.Context, question, productContext string) (string, error)

	callCount int
}

var _ ai.Answerer = (*MockAnswerer)(nil)

// NewMockAnswerer creates a mock answerer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAnswerer().
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// GetAnswer returns a deterministic answer derived from the question.
// Default behavior: echoes the question in a fixed template.
func (m *MockAnswerer) GetAnswer(ctx context.Context, question, productContext string) (string, error) {
	m.callCount++

	if m.GetAnswerFunc != nil {
		return m.GetAnswerFunc(ctx, question, productContext)
	}

	return fmt.Sprintf("mock answer to %q", question), nil
}

// CallCount returns the number of times GetAnswer was called.
func (m *MockAnswerer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockAnswerer) Reset() {
	m.callCount = 0
	m.GetAnswerFunc = nil
}
