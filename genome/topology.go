package genome

import "math/rand"

// Topology is the structural part of a genome: an ordered neuron list
// plus the mutation policy that governs how it evolves. The neuron
// list always begins with exactly NumInputs() input neurons, followed
// immediately by exactly NumOutputs() output neurons; any hidden
// neurons created by mutation are appended after that, in whatever
// order they were created.
type Topology struct {
	neurons    []*Neuron
	numInputs  int
	numOutputs int
	policy     MutationPolicy
}

// New creates n_inputs Input neurons then n_outputs Output neurons.
// Each output picks k neurons uniformly from [1, n_inputs) distinct
// input indices and wires one edge per chosen input with a weight
// uniform in (-1, 1) and an exponent uniform in {0, 1, 2}.
func New(numInputs, numOutputs int, policy MutationPolicy, rng *rand.Rand) (*Topology, error) {
	if numInputs <= 0 || numOutputs <= 0 {
		return nil, ErrInvalidDimensions
	}
	if numInputs < 2 {
		return nil, ErrTooFewInputs
	}

	t := &Topology{numInputs: numInputs, numOutputs: numOutputs, policy: policy}
	for i := 0; i < numInputs; i++ {
		t.neurons = append(t.neurons, newNeuron(RoleInput))
	}

	for o := 0; o < numOutputs; o++ {
		output := newNeuron(RoleOutput)
		k := 1 + rng.Intn(numInputs-1)
		chosen := rng.Perm(numInputs)[:k]
		edges := make([]InputEdge, 0, k)
		for _, idx := range chosen {
			edges = append(edges, InputEdge{
				Source:   t.neurons[idx].ID(),
				Weight:   randWeight(rng),
				Exponent: randExponent(rng),
			})
		}
		output.SetInputs(edges)
		t.neurons = append(t.neurons, output)
	}

	return t, nil
}

// NewFullyConnected is like New but wires every output to every input.
func NewFullyConnected(numInputs, numOutputs int, policy MutationPolicy, rng *rand.Rand) (*Topology, error) {
	if numInputs <= 0 || numOutputs <= 0 {
		return nil, ErrInvalidDimensions
	}

	t := &Topology{numInputs: numInputs, numOutputs: numOutputs, policy: policy}
	for i := 0; i < numInputs; i++ {
		t.neurons = append(t.neurons, newNeuron(RoleInput))
	}

	for o := 0; o < numOutputs; o++ {
		output := newNeuron(RoleOutput)
		edges := make([]InputEdge, 0, numInputs)
		for i := 0; i < numInputs; i++ {
			edges = append(edges, InputEdge{
				Source:   t.neurons[i].ID(),
				Weight:   randWeight(rng),
				Exponent: randExponent(rng),
			})
		}
		output.SetInputs(edges)
		t.neurons = append(t.neurons, output)
	}

	return t, nil
}

func randWeight(rng *rand.Rand) float32 {
	return float32(rng.Float64()*2 - 1)
}

func randExponent(rng *rand.Rand) int32 {
	return int32(rng.Intn(3))
}

// NumInputs returns the fixed input-neuron count.
func (t *Topology) NumInputs() int { return t.numInputs }

// NumOutputs returns the fixed output-neuron count.
func (t *Topology) NumOutputs() int { return t.numOutputs }

// Policy returns the topology's current mutation policy.
func (t *Topology) Policy() MutationPolicy { return t.policy }

// Neurons returns the canonical, shared-pointer neuron slice. Callers
// must not retain it across a mutation.
func (t *Topology) Neurons() []*Neuron { return t.neurons }

// InputNeurons returns the leading NumInputs() neurons.
func (t *Topology) InputNeurons() []*Neuron { return t.neurons[:t.numInputs] }

// OutputNeurons returns the NumOutputs() neurons immediately following
// the input neurons.
func (t *Topology) OutputNeurons() []*Neuron {
	return t.neurons[t.numInputs : t.numInputs+t.numOutputs]
}

// NewHiddenNeuron constructs a fresh, unattached Hidden neuron wired to
// the given input edges. Exposed so callers that assemble a topology
// directly — a checkpoint loader, or a test fixture — can build hidden
// neurons the same way the mutation engine's splitConnection does.
func NewHiddenNeuron(edges []InputEdge) *Neuron {
	n := newNeuron(RoleHidden)
	n.SetInputs(edges)
	return n
}

// AppendHidden appends a neuron built with NewHiddenNeuron to the
// topology's neuron list.
func (t *Topology) AppendHidden(n *Neuron) {
	t.neurons = append(t.neurons, n)
}

// NeuronIDs returns every neuron's id in canonical order.
func (t *Topology) NeuronIDs() []NeuronID {
	ids := make([]NeuronID, len(t.neurons))
	for i, n := range t.neurons {
		ids[i] = n.ID()
	}
	return ids
}

func (t *Topology) byID() map[NeuronID]*Neuron {
	m := make(map[NeuronID]*Neuron, len(t.neurons))
	for _, n := range t.neurons {
		m[n.ID()] = n
	}
	return m
}

// DeepClone produces an isomorphic topology in which every neuron
// receives a fresh identity; edges are re-linked to the new neurons by
// position. An edge whose original source cannot be located (should
// not occur for a well-formed topology) is silently dropped.
func (t *Topology) DeepClone() *Topology {
	clone := &Topology{
		numInputs:  t.numInputs,
		numOutputs: t.numOutputs,
		policy:     t.policy,
		neurons:    make([]*Neuron, len(t.neurons)),
	}

	oldToNew := make(map[NeuronID]*Neuron, len(t.neurons))
	for i, n := range t.neurons {
		fresh := n.cloneFresh()
		clone.neurons[i] = fresh
		oldToNew[n.ID()] = fresh
	}

	for i, n := range t.neurons {
		oldEdges := n.Inputs()
		newEdges := make([]InputEdge, 0, len(oldEdges))
		for _, e := range oldEdges {
			src, ok := oldToNew[e.Source]
			if !ok {
				continue
			}
			newEdges = append(newEdges, InputEdge{Source: src.ID(), Weight: e.Weight, Exponent: e.Exponent})
		}
		clone.neurons[i].SetInputs(newEdges)
	}

	return clone
}

// Replicate runs the full pipeline: deep clone, sample and apply a
// mutation plan, let the policy self-adapt, then repair any cycles the
// mutations introduced.
func (t *Topology) Replicate(rng *rand.Rand) *Topology {
	clone := t.DeepClone()
	actions := clone.policy.GenMutationActions(rng)
	applyMutations(clone, actions, rng)
	clone.policy.AdjustMutationChances(rng)
	removeCycles(clone)
	return clone
}
