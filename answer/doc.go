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


// Package answer implements the deterministic local answer engine used when
// the external assistant service is unavailable.
//
// The engine resolves a customer question against a product's structured data
// through a fixed chain of lexical stages:
//
//   - FAQ matching by normalized-text containment and word-overlap similarity
//   - An ordered table of keyword-triggered intent rules with canned answers
//   - Relevance-scored sentence extraction from the free-text description,
//     with bilingual (Romanian/English) synonym expansion of the keywords
//
// All stages operate on normalized text (lowercase, Romanian diacritics folded
// to base Latin letters, punctuation stripped) and are total functions: they
// may return an empty result, never an error. Lookup tables (stop-words,
// synonym groups, intent rules) are immutable package-level data.
package answer
