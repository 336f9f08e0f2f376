package reindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vectorMagnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func TestNormalizeVector(t *testing.T) {
	t.Run("normalizes to unit length", func(t *testing.T) {
		v := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 1.0, vectorMagnitude(v), 1e-6)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("zero vector stays zero", func(t *testing.T) {
		v := NormalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("empty vector passes through", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})

	t.Run("already unit length unchanged", func(t *testing.T) {
		v := NormalizeVector([]float32{1, 0, 0})
		assert.InDelta(t, 1.0, float64(v[0]), 1e-6)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := []float32{3, 4}
		NormalizeVector(input)
		assert.Equal(t, []float32{3, 4}, input)
	})
}
