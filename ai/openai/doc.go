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


// Package openai implements the ai interfaces using OpenAI-compatible APIs.
//
// The implementation works with any service exposing the OpenAI chat
// completion API, including the hosted OpenAI platform and local servers
// like Ollama, LocalAI, and vLLM.
//
// The answerer embeds the product context into the system prompt and sends
// the customer question as the user message. Errors are surfaced to the
// caller rather than masked, so the assistant layer can fall back to local
// answer logic.
package openai
