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


package core

import (
	"fmt"
	"strings"
)

// ValidateProduct validates a Product according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Price must not be negative
//   - Stock must not be negative
//
// NOT validated:
//   - ID (0 is valid before insertion; sequences assign one)
//   - Description and Category (may be empty)
func ValidateProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}

	if product.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrEmptyTitle)
	}

	if product.Price < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativePrice)
	}

	if product.Stock < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, ErrNegativeStock)
	}

	return nil
}

// ValidateFAQEntry validates an FAQEntry according to domain rules.
//
// Validation rules:
//   - ProductId must be set
//   - Question must not be empty
//   - Answer must not be empty
func ValidateFAQEntry(entry *FAQEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidFAQEntry)
	}

	if entry.ProductId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFAQEntry, ErrMissingFAQProduct)
	}

	if entry.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFAQEntry, ErrEmptyFAQQuestion)
	}

	if entry.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFAQEntry, ErrEmptyFAQAnswer)
	}

	return nil
}

// ValidateAsk validates the inbound parameters of an ask request.
// A blank question or a zero product id is rejected before any processing.
func ValidateAsk(productID ID, question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrEmptyQuestion
	}
	if productID == 0 {
		return ErrInvalidProductID
	}
	return nil
}
