// Package graphnet implements the graph evaluator: a memoized,
// lock-protected, internally-parallel traversal of a compiled
// genome.Topology. Generalized from the teacher's
// neat/nn.FeedForwardNetwork (which pre-sorts a topological order and
// walks it once) into the demand-driven recursive form spec §4.5
// requires, with per-neuron locking and output-level parallelism
// grounded on qubicDB-qubicdb's worker-pool goroutine/WaitGroup idiom.
package graphnet

import (
	"math"
	"sync"

	"github.com/baldhumanity/polyneat/genome"
)

// Network is a compiled, runnable view over a genome.Topology. It does
// not copy the topology: Predict reads and writes the very neurons the
// topology owns, so Network and Topology always agree.
type Network struct {
	topology *genome.Topology
	byID     map[genome.NeuronID]*genome.Neuron
}

// New compiles topology into a Network. Topology has no compile
// method of its own; this is a free function so that genome does not
// import graphnet.
func New(topology *genome.Topology) *Network {
	neurons := topology.Neurons()
	byID := make(map[genome.NeuronID]*genome.Neuron, len(neurons))
	for _, n := range neurons {
		byID[n.ID()] = n
	}
	return &Network{topology: topology, byID: byID}
}

// Predict runs one inference. Extra entries in inputs beyond
// NumInputs() are ignored; missing entries leave the corresponding
// input neuron at 0 — both a design decision per spec §7, not an error.
func (net *Network) Predict(inputs []float32) []float32 {
	neurons := net.topology.Neurons()

	var flushWG sync.WaitGroup
	for _, n := range neurons {
		flushWG.Add(1)
		go func(n *genome.Neuron) {
			defer flushWG.Done()
			n.Flush()
		}(n)
	}
	flushWG.Wait()

	inputNeurons := net.topology.InputNeurons()
	var loadWG sync.WaitGroup
	for i, n := range inputNeurons {
		loadWG.Add(1)
		go func(n *genome.Neuron, i int) {
			defer loadWG.Done()
			var v float32
			if i < len(inputs) {
				v = inputs[i]
			}
			n.Store(v)
		}(n, i)
	}
	loadWG.Wait()

	outputNeurons := net.topology.OutputNeurons()
	outputs := make([]float32, len(outputNeurons))
	var outWG sync.WaitGroup
	for i, n := range outputNeurons {
		outWG.Add(1)
		go func(n *genome.Neuron, i int) {
			defer outWG.Done()
			outputs[i] = net.activate(n)
		}(n, i)
	}
	outWG.Wait()

	return outputs
}

// activate implements spec §4.5's recurrence: a cache hit returns
// immediately; an Input neuron with no cached value (never expected
// during inference, since step 2 always writes one) defensively
// returns 0; otherwise the weighted, exponentiated sum over input
// edges is computed, stored, and returned. NaN/±Inf propagate
// unchanged; the exponent == 0 shortcut contributes edge.Weight
// directly without recursing into edge.Source.
func (net *Network) activate(n *genome.Neuron) float32 {
	if v, ok := n.Peek(); ok {
		return v
	}
	if n.Role() == genome.RoleInput {
		return 0
	}

	var sum float32
	for _, edge := range n.Inputs() {
		if edge.Exponent == 0 {
			sum += edge.Weight
			continue
		}
		source, ok := net.byID[edge.Source]
		if !ok {
			continue // dangling reference: treated as edge deletion
		}
		base := net.activate(source)
		sum += pow(base, edge.Exponent) * edge.Weight
	}

	n.Store(sum)
	return sum
}

func pow(base float32, exp int32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
