package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceVector(t *testing.T) {
	t.Run("float32 slice", func(t *testing.T) {
		in := []float32{0.1, 0.2, 0.3}
		out, err := CoerceVector(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		// Must be a copy, not an alias.
		out[0] = 9
		assert.Equal(t, float32(0.1), in[0])
	})

	t.Run("float64 slice", func(t *testing.T) {
		out, err := CoerceVector([]float64{0.5, 1.5})
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 1.5}, out)
	})

	t.Run("interface slice of json numbers", func(t *testing.T) {
		out, err := CoerceVector([]any{0.25, 0.75, float32(1.0)})
		require.NoError(t, err)
		assert.Equal(t, []float32{0.25, 0.75, 1.0}, out)
	})

	t.Run("interface slice with non-numeric component", func(t *testing.T) {
		_, err := CoerceVector([]any{0.25, "oops"})
		assert.ErrorIs(t, err, ErrUnconvertibleVector)
	})

	t.Run("key-indexed string map", func(t *testing.T) {
		degraded := map[string]any{"0": 0.1, "2": 0.3, "1": 0.2}
		out, err := CoerceVector(degraded)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, out)
	})

	t.Run("key-indexed float map", func(t *testing.T) {
		out, err := CoerceVector(map[string]float64{"1": 0.9, "0": 0.4})
		require.NoError(t, err)
		assert.Equal(t, []float32{0.4, 0.9}, out)
	})

	t.Run("sparse map is rejected", func(t *testing.T) {
		_, err := CoerceVector(map[string]any{"0": 0.1, "2": 0.3})
		assert.ErrorIs(t, err, ErrUnconvertibleVector)
	})

	t.Run("non-integer keys are rejected", func(t *testing.T) {
		_, err := CoerceVector(map[string]any{"x": 0.1})
		assert.ErrorIs(t, err, ErrUnconvertibleVector)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := CoerceVector(nil)
		assert.ErrorIs(t, err, ErrUnconvertibleVector)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := CoerceVector("not a vector")
		assert.ErrorIs(t, err, ErrUnconvertibleVector)
	})
}
