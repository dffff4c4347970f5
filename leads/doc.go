// Copyright 2025 Prospekt Labs
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

// Package leads orchestrates the lead discovery pipeline.
//
// A request flows through a fixed sequence: criteria validation, query
// building, batch embedding and similarity search over a shared candidate
// window, fingerprint deduplication, weighted relevance scoring,
// post-scoring identity resolution, and lead formatting. Independent
// requests run concurrently against the read-only store; within one
// request the stages are sequential.
package leads
