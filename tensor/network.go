package tensor

import (
	"github.com/baldhumanity/polyneat/genome"
	"github.com/baldhumanity/polyneat/poly"
)

// Network is the compiled symbolic/tensor back-end for a topology: a
// fixed basis, a dense coefficient matrix, and the Provider that
// carries out the actual arithmetic. Topology has no compile method of
// its own; New is a free function so that genome does not import
// tensor.
type Network struct {
	numInputs int
	basis     Basis
	coeffs    Coefficients
	coeffMat  Matrix
	provider  Provider
}

// New expands topology, compiles its basis and coefficient matrix, and
// binds them to provider.
func New(topology *genome.Topology, provider Provider) *Network {
	polys := Expand(topology)
	basis := CollectBasis(polys)
	coeffs := BuildCoefficients(polys, basis)
	coeffMat := provider.NewMatrix(coeffs.Rows, coeffs.Cols, coeffs.Data)
	return &Network{
		numInputs: topology.NumInputs(),
		basis:     basis,
		coeffs:    coeffs,
		coeffMat:  coeffMat,
		provider:  provider,
	}
}

// Predict builds the basis column for inputs and returns C . b (spec
// §4.8). As with the graph evaluator, extra entries in inputs are
// ignored and missing entries are treated as 0.
func (net *Network) Predict(inputs []float32) []float32 {
	column := make([]float32, len(net.basis))
	for j, term := range net.basis {
		column[j] = net.basisValue(term, inputs)
	}

	b := net.provider.NewVector(column)
	y := net.provider.Matmul(net.coeffMat, b)
	return net.provider.ToHost(y)
}

// basisValue computes b_j = product over variables v of x[v]^{e_j[v]},
// the empty exponent vector yielding 1. Each factor is routed through
// the provider's PowElementwise so a Provider swap also controls how
// this multivariate product is computed, one variable at a time.
func (net *Network) basisValue(term poly.Term, inputs []float32) float32 {
	value := float32(1)
	for _, v := range term.Variables() {
		exp := term.ExponentOf(v)
		var x float32
		if v < len(inputs) {
			x = inputs[v]
		}
		raised := net.provider.PowElementwise(net.provider.NewVector([]float32{x}), []int32{exp})
		value *= net.provider.ToHost(raised)[0]
	}
	return value
}
