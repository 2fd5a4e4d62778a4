package genome

import "math/rand"

// minExponent and maxExponent bound MutateExponent's result to a sensible range, as
// explicitly permitted by spec §4.2. Negative exponents remain legal
// throughout this range; the symbolic back-end expands them correctly.
const (
	minExponent = -8
	maxExponent = 8
)

// applyMutations runs each action in the plan against t in order. Every
// action is best-effort: if its precondition fails (e.g. the chosen
// neuron has no inputs), it is silently skipped rather than retried.
func applyMutations(t *Topology, actions []MutationAction, rng *rand.Rand) {
	for _, action := range actions {
		switch action {
		case ActionSplitConnection:
			splitConnection(t, rng)
		case ActionAddConnection:
			addConnection(t, rng)
		case ActionRemoveNeuron:
			removeNeuron(t, rng)
		case ActionMutateWeight:
			mutateWeight(t, rng)
		case ActionMutateExponent:
			mutateExponent(t, rng)
		}
	}
}

func randomNeuronIndex(t *Topology, rng *rand.Rand) int {
	return rng.Intn(len(t.neurons))
}

// splitConnection removes a random edge from a random neuron and
// re-introduces it through a freshly created hidden neuron, preserving
// the signal path while adding capacity.
func splitConnection(t *Topology, rng *rand.Rand) {
	idx := randomNeuronIndex(t, rng)
	target := t.neurons[idx]
	n := target.NumInputs()
	if n == 0 {
		return
	}
	edgeIdx := rng.Intn(n)
	removed, ok := target.RemoveInputAt(edgeIdx)
	if !ok {
		return
	}

	hidden := newNeuron(RoleHidden)
	hidden.SetInputs([]InputEdge{removed})
	t.neurons = append(t.neurons, hidden)

	target.AppendInput(InputEdge{
		Source:   hidden.ID(),
		Weight:   rng.Float32(),
		Exponent: 1,
	})
}

// addConnection wires a new edge between two distinct random neurons,
// rejecting the draw if it would source from an Output or target an
// Input. Cycles introduced here are repaired in the post-mutation pass.
func addConnection(t *Topology, rng *rand.Rand) {
	srcIdx := randomNeuronIndex(t, rng)
	dstIdx := randomNeuronIndex(t, rng)
	if srcIdx == dstIdx {
		return
	}
	src, dst := t.neurons[srcIdx], t.neurons[dstIdx]
	if src.Role() == RoleOutput || dst.Role() == RoleInput {
		return
	}
	dst.AppendInput(InputEdge{
		Source:   src.ID(),
		Weight:   randWeight(rng),
		Exponent: randExponent(rng),
	})
}

// removeNeuron drops a random Hidden neuron from the topology. Input
// and Output neurons are never removed. Edges elsewhere that reference
// the removed neuron become dangling and are pruned by cycle repair.
func removeNeuron(t *Topology, rng *rand.Rand) {
	if len(t.neurons) <= 1 {
		return
	}
	idx := randomNeuronIndex(t, rng)
	victim := t.neurons[idx]
	if victim.Role() != RoleHidden {
		return
	}
	t.neurons = append(t.neurons[:idx:idx], t.neurons[idx+1:]...)
}

func mutateWeight(t *Topology, rng *rand.Rand) {
	idx := randomNeuronIndex(t, rng)
	n := t.neurons[idx]
	count := n.NumInputs()
	if count == 0 {
		return
	}
	edgeIdx := rng.Intn(count)
	delta := randWeight(rng)
	n.MutateInputAt(edgeIdx, func(e *InputEdge) { e.Weight += delta })
}

func mutateExponent(t *Topology, rng *rand.Rand) {
	idx := randomNeuronIndex(t, rng)
	n := t.neurons[idx]
	count := n.NumInputs()
	if count == 0 {
		return
	}
	edgeIdx := rng.Intn(count)
	delta := int32(1)
	if rng.Intn(2) == 0 {
		delta = -1
	}
	n.MutateInputAt(edgeIdx, func(e *InputEdge) {
		e.Exponent += delta
		if e.Exponent < minExponent {
			e.Exponent = minExponent
		}
		if e.Exponent > maxExponent {
			e.Exponent = maxExponent
		}
	})
}

// removalMark identifies exactly one edge to delete: the edgeIdx-th
// input of the neuron identified by id.
type removalMark struct {
	id      NeuronID
	edgeIdx int
}

// removeCycles repeatedly scans the topology for a back-edge via a
// recursive DFS with a recursion stack, deletes exactly that edge, and
// restarts the whole scan, until a full pass finds none. The DFS treats
// a dangling edge (source no longer present) as a dead end rather than
// a cycle; once no back-edge remains, pruneDangling deletes all such
// edges and the scan restarts if it removed any.
func removeCycles(t *Topology) {
	for {
		byID := t.byID()
		visited := make(map[NeuronID]bool, len(t.neurons))
		stack := make(map[NeuronID]bool, len(t.neurons))
		var mark *removalMark

		for _, n := range t.neurons {
			if visited[n.ID()] {
				continue
			}
			if m := dfsFindBackEdge(n, byID, visited, stack); m != nil {
				mark = m
				break
			}
		}

		if mark == nil {
			// Second pass: prune edges whose source neuron is gone.
			if pruneDangling(t) {
				continue
			}
			return
		}

		neuron := byID[mark.id]
		if neuron != nil {
			neuron.RemoveInputAt(mark.edgeIdx)
		}
	}
}

func dfsFindBackEdge(n *Neuron, byID map[NeuronID]*Neuron, visited, stack map[NeuronID]bool) *removalMark {
	id := n.ID()
	stack[id] = true
	visited[id] = true
	defer delete(stack, id)

	for edgeIdx, edge := range n.Inputs() {
		source, ok := byID[edge.Source]
		if !ok {
			continue // dangling; pruned in a later pass
		}
		sourceID := source.ID()
		if !visited[sourceID] {
			if m := dfsFindBackEdge(source, byID, visited, stack); m != nil {
				return m
			}
		} else if stack[sourceID] {
			return &removalMark{id: id, edgeIdx: edgeIdx}
		}
	}
	return nil
}

func pruneDangling(t *Topology) bool {
	byID := t.byID()
	pruned := false
	for _, n := range t.neurons {
		edges := n.Inputs()
		kept := edges[:0:0]
		changed := false
		for _, e := range edges {
			if _, ok := byID[e.Source]; ok {
				kept = append(kept, e)
			} else {
				changed = true
			}
		}
		if changed {
			n.SetInputs(kept)
			pruned = true
		}
	}
	return pruned
}
