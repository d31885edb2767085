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


// Package ai provides abstractions for AI services used in Vitrina.
//
// This package defines the interface for answer generation against a
// product context. It follows the dependency inversion principle, allowing
// the assistant orchestration to depend on abstractions rather than
// concrete implementations.
//
// # Design Principles
//
// The package is designed around two key interfaces:
//
//   - Answerer: Generates an answer to a question given product context
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewAnswerer) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockAnswerer) return CONCRETE types to
// enable test assertions and behavior injection via the mock's public
// methods (CallCount, function fields, Reset).
//
//	mockAnswer := mock.NewMockAnswerer()  // returns *mock.MockAnswerer
//	mockAnswer.GetAnswerFunc = ...        // needs concrete type
//	count := mockAnswer.CallCount()       // test assertion
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithModel("gpt-4o-mini"), ai.WithToken(key))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	answer, err := provider.Answerer().GetAnswer(ctx, question, productContext)
package ai
