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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
)

const (
	defaultPoolSize      = 4
	defaultRetryAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond
)

// CatalogItem bundles a product with the FAQ entries that belong to it.
// The entries' ProductId is assigned after the product is stored, so it
// may be left zero when building items by hand.
type CatalogItem struct {
	Product *core.Product
	FAQs    []*core.FAQEntry
}

// Pipeline loads catalog items into storage through a bounded worker pool.
type Pipeline struct {
	productRepository storage.ProductRepository
	faqRepository     storage.FAQRepository
	pool              *ants.Pool
	retryAttempts     int
	retryBaseDelay    time.Duration
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the number of concurrent ingestion workers.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size <= 0 {
			return fmt.Errorf("pool size must be positive, got %d", size)
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return fmt.Errorf("creating worker pool: %w", err)
		}
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithRetry configures how storage writes are retried.
func WithRetry(attempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.retryAttempts = attempts
		p.retryBaseDelay = baseDelay
		return nil
	}
}

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingestion")
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given repositories.
func NewPipeline(productRepository storage.ProductRepository, faqRepository storage.FAQRepository, opts ...Option) (*Pipeline, error) {
	if productRepository == nil {
		return nil, ErrProductRepositoryRequired
	}
	if faqRepository == nil {
		return nil, ErrFAQRepositoryRequired
	}

	p := &Pipeline{
		productRepository: productRepository,
		faqRepository:     faqRepository,
		retryAttempts:     defaultRetryAttempts,
		retryBaseDelay:    defaultRetryDelay,
		logger:            slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			if p.pool != nil {
				p.pool.Release()
			}
			return nil, err
		}
	}

	if p.pool == nil {
		pool, err := ants.NewPool(defaultPoolSize)
		if err != nil {
			return nil, fmt.Errorf("creating worker pool: %w", err)
		}
		p.pool = pool
	}

	return p, nil
}

// Ingest validates and stores the given catalog items, returning once all
// of them have been processed. Failures are collected per item and joined;
// a failed item never blocks the others. The tracker may be nil.
func (p *Pipeline) Ingest(ctx context.Context, items []*CatalogItem, tracker *ProgressTracker) error {
	if len(items) == 0 {
		return nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errList []error
	)

	for _, item := range items {
		item := item
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			if err := p.ingestItem(ctx, item); err != nil {
				mu.Lock()
				errList = append(errList, err)
				mu.Unlock()
				return
			}
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			errList = append(errList, fmt.Errorf("submitting item: %w", err))
			mu.Unlock()
		}
	}

	wg.Wait()
	return errors.Join(errList...)
}

// Close releases the worker pool.
func (p *Pipeline) Close() error {
	p.pool.Release()
	return nil
}

func (p *Pipeline) ingestItem(ctx context.Context, item *CatalogItem) error {
	if item == nil || item.Product == nil {
		return ErrNilItem
	}

	if err := core.ValidateProduct(item.Product); err != nil {
		return fmt.Errorf("validating product %q: %w", item.Product.Title, err)
	}

	err := RetryWithBackoff(ctx, func() error {
		_, addErr := p.productRepository.AddProducts(ctx, item.Product)
		return addErr
	}, p.retryAttempts, p.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("storing product %q: %w", item.Product.Title, err)
	}

	p.logger.Debug("product stored", "id", item.Product.Id, "title", item.Product.Title)

	if len(item.FAQs) == 0 {
		return nil
	}

	for _, entry := range item.FAQs {
		entry.ProductId = item.Product.Id
		if err := core.ValidateFAQEntry(entry); err != nil {
			return fmt.Errorf("validating FAQ for product %d: %w", item.Product.Id, err)
		}
	}

	err = RetryWithBackoff(ctx, func() error {
		_, addErr := p.faqRepository.AddFAQs(ctx, item.FAQs...)
		return addErr
	}, p.retryAttempts, p.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("storing FAQs for product %d: %w", item.Product.Id, err)
	}

	p.logger.Debug("FAQ entries stored", "productId", item.Product.Id, "count", len(item.FAQs))
	return nil
}
