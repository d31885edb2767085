// Copyright 2026 Pasvio
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/pasvio/vitrina/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates a mock answerer instance.
type MockProvider struct {
	answerer *MockAnswerer
}

// NewMockProvider creates a new mock provider with a default mock answerer.
//
// Returns ai.AIProvider interface for consistency with production
// constructors. Use GetMockAnswerer() to access the concrete type for test
// assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		answerer: NewMockAnswerer(),
	}
}

// NewMockProviderWithAnswerer creates a mock provider with a custom mock
// answerer. This allows full control over the answering behavior.
func NewMockProviderWithAnswerer(answerer *MockAnswerer) ai.AIProvider {
	return &MockProvider{
		answerer: answerer,
	}
}

// Answerer returns the mock answerer.
func (p *MockProvider) Answerer() ai.Answerer {
	return p.answerer
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockAnswerer returns the underlying mock answerer for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockAnswerer() *MockAnswerer {
	return p.answerer
}
