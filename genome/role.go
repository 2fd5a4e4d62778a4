package genome

// Role is the tagged variant a Neuron belongs to. Only Hidden neurons
// may be added or removed by mutation; Input and Output counts are
// fixed for the lifetime of a Topology.
type Role int

const (
	RoleInput Role = iota
	RoleHidden
	RoleOutput
)

var roleNames = map[Role]string{
	RoleInput:  "input",
	RoleHidden: "hidden",
	RoleOutput: "output",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}
