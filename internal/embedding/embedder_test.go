package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_Identical(t *testing.T) {
	sim, err := Cosine([]float32{0.3, 0.4}, []float32{0.3, 0.4})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 0.001)
}

func TestCosine_Opposite(t *testing.T) {
	sim, err := Cosine([]float32{1, 0}, []float32{-1, 0})

	require.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 0.001)
}

func TestCosine_ScaleInvariant(t *testing.T) {
	a, err := Cosine([]float32{1, 2}, []float32{3, 4})
	require.NoError(t, err)
	b, err := Cosine([]float32{10, 20}, []float32{3, 4})
	require.NoError(t, err)

	assert.InDelta(t, a, b, 0.0001)
}

func TestCosine_Errors(t *testing.T) {
	_, err := Cosine([]float32{1, 0}, []float32{1})
	assert.Error(t, err)

	_, err = Cosine(nil, nil)
	assert.Error(t, err)

	_, err = Cosine([]float32{0, 0}, []float32{1, 0})
	assert.Error(t, err)
}

func TestNormalizeL2(t *testing.T) {
	out := NormalizeL2([]float32{3, 4})

	require.NotNil(t, out)
	assert.InDelta(t, 0.6, float64(out[0]), 0.001)
	assert.InDelta(t, 0.8, float64(out[1]), 0.001)
}

func TestNormalizeL2_ZeroVector(t *testing.T) {
	assert.Nil(t, NormalizeL2([]float32{0, 0}))
	assert.Nil(t, NormalizeL2(nil))
}

func TestNormalizeL2_DoesNotMutateInput(t *testing.T) {
	in := []float32{3, 4}

	_ = NormalizeL2(in)

	assert.Equal(t, []float32{3, 4}, in)
}
