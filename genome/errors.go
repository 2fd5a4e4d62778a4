package genome

import "errors"

// Sentinel errors. The engine is designed to be total on well-formed
// input (spec §7); these surface only at construction/config
// boundaries, never from the evaluators.
var (
	ErrInvalidDimensions = errors.New("genome: num_inputs and num_outputs must both be positive")
	ErrTooFewInputs      = errors.New("genome: num_inputs must be at least 2 for partially-connected construction")
)
