// Package tensor implements the symbolic/tensor back-end: expanding a
// genome.Topology's outputs into multivariate polynomials, compiling a
// basis and coefficient matrix, and evaluating inference as one matmul
// against a swappable Provider. Grounded on the source this engine was
// distilled from, src/candle_net/{network,basis_prime,coeff}.rs, with
// the Candle/GPU-specific device coupling stripped out.
package tensor

import (
	"github.com/baldhumanity/polyneat/genome"
	"github.com/baldhumanity/polyneat/poly"
)

// Expand derives one polynomial per Output neuron, in canonical order,
// with variables keyed by input-neuron position (spec §4.6). Recursion
// terminates because a well-formed topology is acyclic after repair;
// each neuron's polynomial is memoized for the duration of this call.
func Expand(topology *genome.Topology) []poly.Polynomial {
	inputIndex := make(map[genome.NeuronID]int, topology.NumInputs())
	for i, n := range topology.InputNeurons() {
		inputIndex[n.ID()] = i
	}

	byID := make(map[genome.NeuronID]*genome.Neuron, len(topology.Neurons()))
	for _, n := range topology.Neurons() {
		byID[n.ID()] = n
	}

	memo := make(map[genome.NeuronID]poly.Polynomial, len(topology.Neurons()))

	var expandNeuron func(n *genome.Neuron) poly.Polynomial
	expandNeuron = func(n *genome.Neuron) poly.Polynomial {
		if p, ok := memo[n.ID()]; ok {
			return p
		}
		var result poly.Polynomial
		if n.Role() == genome.RoleInput {
			result = poly.Variable(inputIndex[n.ID()])
		} else {
			result = poly.Zero()
			for _, edge := range n.Inputs() {
				if edge.Exponent == 0 {
					result = poly.Add(result, poly.Constant(edge.Weight))
					continue
				}
				source, ok := byID[edge.Source]
				if !ok {
					continue // dangling reference: treated as edge deletion
				}
				term := poly.Pow(expandNeuron(source), edge.Exponent)
				result = poly.Add(result, poly.Scale(edge.Weight, term))
			}
		}
		memo[n.ID()] = result
		return result
	}

	outputs := topology.OutputNeurons()
	polys := make([]poly.Polynomial, len(outputs))
	for i, n := range outputs {
		polys[i] = expandNeuron(n)
	}
	return polys
}
