package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxNormalizeRange(t *testing.T) {
	out := MinMaxNormalize([]float64{2, 4, 6, 10})

	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 0.25, out[1])
	assert.Equal(t, 0.5, out[2])
	assert.Equal(t, 1.0, out[3])
}

func TestMinMaxNormalizePreservesNaN(t *testing.T) {
	out := MinMaxNormalize([]float64{1, math.NaN(), 3})

	assert.Equal(t, 0.0, out[0])
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 1.0, out[2])
}

func TestMinMaxNormalizeAllNaN(t *testing.T) {
	out := MinMaxNormalize([]float64{math.NaN(), math.NaN()})

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
}

func TestMinMaxNormalizeDegenerateColumn(t *testing.T) {
	// all valid values equal: zero-mapping, not a divide-by-zero artifact
	out := MinMaxNormalize([]float64{7, 7, math.NaN(), 7})

	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 0.0, out[1])
	assert.True(t, math.IsNaN(out[2]))
	assert.Equal(t, 0.0, out[3])
}

func TestMinMaxNormalizeNegativeValues(t *testing.T) {
	out := MinMaxNormalize([]float64{-4, 0, 4})

	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 0.5, out[1])
	assert.Equal(t, 1.0, out[2])
}

func TestMinMaxNormalizeDoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3}
	MinMaxNormalize(in)

	assert.Equal(t, []float64{1, 2, 3}, in)
}

func TestMinMaxNormalizeEmpty(t *testing.T) {
	assert.Empty(t, MinMaxNormalize(nil))
}
