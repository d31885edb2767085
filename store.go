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


package vitrina

import (
	"log/slog"

	"github.com/pasvio/vitrina/ai"
	"github.com/pasvio/vitrina/ai/openai"
	"github.com/pasvio/vitrina/assistant"
	"github.com/pasvio/vitrina/ingestion"
	"github.com/pasvio/vitrina/storage"
	"github.com/pasvio/vitrina/storage/badger"
)

// Store bundles the catalog repositories and the AI provider behind a
// single handle. It is the entry point for embedding the assistant.
type Store struct {
	backend     *badger.Backend
	productRepo storage.ProductRepository
	faqRepo     storage.FAQRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the configuration used for the default OpenAI-compatible
// provider. Ignored when WithAIProvider is also given.
func WithAIConfig(config *ai.Config) StoreOption {
	return func(o *storeOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider instead of constructing
// one from configuration.
func WithAIProvider(provider ai.AIProvider) StoreOption {
	return func(o *storeOptions) {
		o.provider = provider
	}
}

func NewStore(filePath string, opts ...StoreOption) (*Store, error) {
	// Apply options
	options := &storeOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create product repository
	productRepo, err := badger.NewProductRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create FAQ repository
	faqRepo, err := badger.NewFAQRepository(backend)
	if err != nil {
		productRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			faqRepo.Close()
			productRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Store{
		backend:     backend,
		productRepo: productRepo,
		faqRepo:     faqRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (s *Store) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := s.faqRepo.Close(); err != nil {
		s.logger.Error("error closing FAQ repository", "err", err)
		return err
	}
	if err := s.productRepo.Close(); err != nil {
		s.logger.Error("error closing product repository", "err", err)
		return err
	}

	// Close backend
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Store) ProductRepository() storage.ProductRepository {
	return s.productRepo
}

func (s *Store) FAQRepository() storage.FAQRepository {
	return s.faqRepo
}

func (s *Store) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.productRepo, s.faqRepo, opts...)
}

func (s *Store) NewAssistant(opts ...assistant.Option) (*assistant.Assistant, error) {
	return assistant.NewAssistant(s.productRepo, s.faqRepo, s.provider, opts...)
}
