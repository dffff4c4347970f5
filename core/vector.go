package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// CoerceVector recovers an ordered []float32 from the representations an
// embedding vector can degrade into on its way through JSON and schema-less
// storage: ordered numeric slices, slices of interface values, and
// key-indexed maps ("0": 0.12, "1": 0.45, ...) produced by round-tripping
// an array through a document store.
//
// Returns ErrUnconvertibleVector when the input cannot be recovered; callers
// should skip such records rather than score them as zero.
func CoerceVector(value any) ([]float32, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrUnconvertibleVector)
	case []float32:
		out := make([]float32, len(v))
		copy(out, v)
		return out, nil
	case []float64:
		out := make([]float32, len(v))
		for i, f := range v {
			out[i] = float32(f)
		}
		return out, nil
	case []any:
		out := make([]float32, len(v))
		for i, elem := range v {
			f, ok := toFloat(elem)
			if !ok {
				return nil, fmt.Errorf("%w: non-numeric component at index %d", ErrUnconvertibleVector, i)
			}
			out[i] = f
		}
		return out, nil
	case map[string]float64:
		indexed := make(map[int]float32, len(v))
		for key, f := range v {
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("%w: non-integer key %q", ErrUnconvertibleVector, key)
			}
			indexed[idx] = float32(f)
		}
		return fromIndexed(indexed)
	case map[string]any:
		indexed := make(map[int]float32, len(v))
		for key, elem := range v {
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("%w: non-integer key %q", ErrUnconvertibleVector, key)
			}
			f, ok := toFloat(elem)
			if !ok {
				return nil, fmt.Errorf("%w: non-numeric component at key %q", ErrUnconvertibleVector, key)
			}
			indexed[idx] = f
		}
		return fromIndexed(indexed)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrUnconvertibleVector, value)
	}
}

// fromIndexed rebuilds an ordered vector from index->component pairs.
// Indices must form a dense 0..n-1 range.
func fromIndexed(indexed map[int]float32) ([]float32, error) {
	if len(indexed) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrUnconvertibleVector)
	}

	indices := make([]int, 0, len(indexed))
	for idx := range indexed {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	if indices[0] != 0 || indices[len(indices)-1] != len(indices)-1 {
		return nil, fmt.Errorf("%w: sparse index range", ErrUnconvertibleVector)
	}

	out := make([]float32, len(indices))
	for idx, f := range indexed {
		out[idx] = f
	}
	return out, nil
}

// toFloat converts the numeric types a JSON decoder can produce.
func toFloat(value any) (float32, bool) {
	switch n := value.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return float32(f), true
	default:
		return 0, false
	}
}
