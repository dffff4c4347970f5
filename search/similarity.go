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

package search

import "math"

// Similarity computes the cosine similarity between two vectors, remapped
// from [-1, 1] to [0, 1] so downstream thresholds stay non-negative.
//
// Returns 0 when the vectors have different lengths, either is empty, or
// either has zero magnitude. The result is never NaN.
func Similarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	cosine := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(cosine) {
		return 0
	}

	// Remap to [0, 1], clamping against float drift at the extremes.
	remapped := (cosine + 1) / 2
	if remapped < 0 {
		return 0
	}
	if remapped > 1 {
		return 1
	}
	return remapped
}
