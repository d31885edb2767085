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


// Package assistant orchestrates product question answering.
//
// The Assistant type implements a two-tier answering strategy:
//   - External answering through an AI provider with the product context
//     embedded in the prompt
//   - Local deterministic answering (FAQ matching, intent rules, sentence
//     extraction) when the external service fails or returns a degraded
//     response
//
// Whatever happens upstream, Ask returns a usable answer for any existing
// product: the local chain ends in a fixed fallback message.
package assistant
