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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProduct indicates a Product failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidFAQEntry indicates an FAQEntry failed validation.
	ErrInvalidFAQEntry = errors.New("invalid faq entry")

	// ErrEmptyTitle indicates the product Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNegativePrice indicates a negative product price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeStock indicates a negative stock count.
	ErrNegativeStock = errors.New("stock cannot be negative")

	// ErrEmptyFAQQuestion indicates the FAQ Question field is empty.
	ErrEmptyFAQQuestion = errors.New("faq question cannot be empty")

	// ErrEmptyFAQAnswer indicates the FAQ Answer field is empty.
	ErrEmptyFAQAnswer = errors.New("faq answer cannot be empty")

	// ErrMissingFAQProduct indicates an FAQEntry without a product reference.
	ErrMissingFAQProduct = errors.New("faq entry requires a product id")

	// ErrEmptyQuestion indicates an ask request with a blank question.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrInvalidProductID indicates an ask request with a zero product id.
	ErrInvalidProductID = errors.New("product id must be positive")
)
