package genome

import "sync"

// Neuron holds identity, role, its ordered input-edge list, and a
// transient per-inference activation cache. The cache and the edge
// list are interior-mutable state shared across every holder of this
// neuron within a single Topology, so both are guarded by mu: readers
// take RLock, a cache miss upgrades to Lock only for the duration of
// the store, and the lock is never held across a recursive call into
// another neuron.
type Neuron struct {
	mu sync.RWMutex

	id     NeuronID
	role   Role
	inputs []InputEdge

	cached bool
	cache  float32
}

func newNeuron(role Role) *Neuron {
	return &Neuron{id: newNeuronID(), role: role}
}

// ID returns the neuron's identity. Immutable after construction.
func (n *Neuron) ID() NeuronID {
	return n.id
}

// Role returns the neuron's role. Immutable after construction.
func (n *Neuron) Role() Role {
	return n.role
}

// Inputs returns a copy of the neuron's current input-edge list.
func (n *Neuron) Inputs() []InputEdge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]InputEdge, len(n.inputs))
	copy(out, n.inputs)
	return out
}

// NumInputs returns len(Inputs()) without allocating a copy.
func (n *Neuron) NumInputs() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.inputs)
}

// SetInputs replaces the neuron's entire input-edge list.
func (n *Neuron) SetInputs(edges []InputEdge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inputs = edges
}

// AppendInput appends a single edge to the neuron's input list.
func (n *Neuron) AppendInput(e InputEdge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inputs = append(n.inputs, e)
}

// RemoveInputAt removes and returns the edge at index i, shifting
// later edges down by one position. Reports false if i is out of range.
func (n *Neuron) RemoveInputAt(i int) (InputEdge, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i < 0 || i >= len(n.inputs) {
		return InputEdge{}, false
	}
	removed := n.inputs[i]
	n.inputs = append(n.inputs[:i:i], n.inputs[i+1:]...)
	return removed, true
}

// MutateInputAt applies fn to the edge at index i in place. Reports
// false if i is out of range.
func (n *Neuron) MutateInputAt(i int, fn func(*InputEdge)) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if i < 0 || i >= len(n.inputs) {
		return false
	}
	fn(&n.inputs[i])
	return true
}

// Peek returns the cached activation, if present, without computing it.
func (n *Neuron) Peek() (float32, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.cache, n.cached
}

// Store writes a freshly computed activation into the cache.
func (n *Neuron) Store(v float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cache = v
	n.cached = true
}

// Flush clears the cache, as the first step of every graph-evaluator
// Predict call.
func (n *Neuron) Flush() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cached = false
	n.cache = 0
}

// cloneFresh produces a structural copy with a brand new identity and
// an empty input list; inputs are re-linked by the caller once every
// neuron in a topology has been copied.
func (n *Neuron) cloneFresh() *Neuron {
	return &Neuron{id: newNeuronID(), role: n.role}
}
