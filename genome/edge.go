package genome

// InputEdge is a weighted, exponentiated reference from a source
// neuron to whichever neuron owns this edge. Source must never resolve
// to a neuron with RoleOutput.
type InputEdge struct {
	Source   NeuronID
	Weight   float32
	Exponent int32
}
