package genome

import "github.com/google/uuid"

// NeuronID is a process-unique opaque identifier minted on neuron
// creation and on every deep clone of a neuron. Never reused.
type NeuronID = uuid.UUID

func newNeuronID() NeuronID {
	return uuid.New()
}

// ShortID renders the first 6 hex characters of an id, useful in log
// lines and test failure messages.
func ShortID(id NeuronID) string {
	s := id.String()
	if len(s) < 6 {
		return s
	}
	return s[:6]
}
