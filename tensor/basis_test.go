package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/polyneat/genome"
	"github.com/baldhumanity/polyneat/tensor"
)

func TestCollectBasisInsertionOrderFirstSeenWins(t *testing.T) {
	top := andGateFixture(t)
	polys := tensor.Expand(top)
	basis := tensor.CollectBasis(polys)
	require.Len(t, basis, 3)

	seen := make(map[string]bool)
	for _, term := range basis {
		k := term.Key()
		assert.False(t, seen[k], "basis entry %q repeated", k)
		seen[k] = true
	}
}

func TestBuildCoefficientsDenseMatrix(t *testing.T) {
	top := andGateFixture(t)
	polys := tensor.Expand(top)
	basis := tensor.CollectBasis(polys)
	coeffs := tensor.BuildCoefficients(polys, basis)

	assert.Equal(t, 1, coeffs.Rows)
	assert.Equal(t, len(basis), coeffs.Cols)
	assert.Len(t, coeffs.Data, coeffs.Rows*coeffs.Cols)

	var sum float32
	for _, v := range coeffs.Data {
		sum += v
	}
	assert.InDelta(t, 4.0, sum, 1e-5) // 1 + 1 + 2 from (x0+x1)^2
}

func TestBuildCoefficientsSkipsMissingBasisEntries(t *testing.T) {
	rng := mustRand(3)
	top, err := genome.New(2, 1, genome.NoMutationPolicy(), rng)
	require.NoError(t, err)
	polys := tensor.Expand(top)
	emptyBasis := tensor.Basis{}
	coeffs := tensor.BuildCoefficients(polys, emptyBasis)
	assert.Equal(t, 0, coeffs.Cols)
	for _, v := range coeffs.Data {
		assert.Zero(t, v)
	}
}
