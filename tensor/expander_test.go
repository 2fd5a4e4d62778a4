package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/polyneat/genome"
	"github.com/baldhumanity/polyneat/poly"
	"github.com/baldhumanity/polyneat/tensor"
)

func andGateFixture(t *testing.T) *genome.Topology {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	top, err := genome.New(2, 1, genome.NoMutationPolicy(), rng)
	require.NoError(t, err)
	for _, n := range top.OutputNeurons() {
		n.SetInputs(nil)
	}
	inputs := top.InputNeurons()
	output := top.OutputNeurons()[0]
	hidden := genome.NewHiddenNeuron([]genome.InputEdge{
		{Source: inputs[0].ID(), Weight: 1, Exponent: 1},
		{Source: inputs[1].ID(), Weight: 1, Exponent: 1},
	})
	top.AppendHidden(hidden)
	output.SetInputs([]genome.InputEdge{{Source: hidden.ID(), Weight: 1, Exponent: 2}})
	return top
}

func coeffOf(p poly.Polynomial, key string) (float32, bool) {
	for _, term := range p.Terms {
		if term.Key() == key {
			return term.Coefficient, true
		}
	}
	return 0, false
}

// S1: expanding the AND-gate fixture must yield (x0+x1)^2 = x0^2 + 2 x0
// x1 + x1^2.
func TestExpandANDGate(t *testing.T) {
	top := andGateFixture(t)
	polys := tensor.Expand(top)
	require.Len(t, polys, 1)
	p := polys[0]
	require.Len(t, p.Terms, 3)

	sq0, ok := coeffOf(p, keyOfMonomial(0, 2))
	require.True(t, ok)
	assert.InDelta(t, 1.0, sq0, 1e-5)

	sq1, ok := coeffOf(p, keyOfMonomial(1, 2))
	require.True(t, ok)
	assert.InDelta(t, 1.0, sq1, 1e-5)

	cross, ok := coeffOf(p, keyOfCross(0, 1))
	require.True(t, ok)
	assert.InDelta(t, 2.0, cross, 1e-5)
}

func keyOfMonomial(v int, exp int32) string {
	term := poly.NewVariableTerm(v)
	p := poly.Pow(poly.Polynomial{Terms: []poly.Term{term}}, exp)
	return p.Terms[0].Key()
}

func keyOfCross(v1, v2 int) string {
	p := poly.Multiply(poly.Variable(v1), poly.Variable(v2))
	return p.Terms[0].Key()
}

// S2: two outputs sharing one hidden neuron expand independently, each
// producing its own polynomial; the two have no monomial in common.
func TestExpandSharedHidden(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	top, err := genome.New(2, 2, genome.NoMutationPolicy(), rng)
	require.NoError(t, err)
	for _, n := range top.OutputNeurons() {
		n.SetInputs(nil)
	}
	inputs := top.InputNeurons()
	outputs := top.OutputNeurons()
	hidden := genome.NewHiddenNeuron([]genome.InputEdge{
		{Source: inputs[0].ID(), Weight: 1, Exponent: 1},
		{Source: inputs[1].ID(), Weight: 1, Exponent: 1},
	})
	top.AppendHidden(hidden)
	outputs[0].SetInputs([]genome.InputEdge{{Source: hidden.ID(), Weight: 1, Exponent: 2}})
	outputs[1].SetInputs([]genome.InputEdge{{Source: hidden.ID(), Weight: 2, Exponent: 1}})

	polys := tensor.Expand(top)
	require.Len(t, polys, 2)
	assert.Len(t, polys[0].Terms, 3) // (x0+x1)^2
	assert.Len(t, polys[1].Terms, 2) // 2*(x0+x1)
}
