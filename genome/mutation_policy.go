package genome

import "math/rand"

// MaxMutations bounds the number of actions a single GenMutationActions
// call may emit, guaranteeing termination regardless of self_rate.
const MaxMutations = 200

// MutationAction names one of the five structural/parametric edits the
// mutation engine knows how to apply.
type MutationAction int

const (
	ActionSplitConnection MutationAction = iota
	ActionAddConnection
	ActionRemoveNeuron
	ActionMutateWeight
	ActionMutateExponent
)

func (a MutationAction) String() string {
	switch a {
	case ActionSplitConnection:
		return "split_connection"
	case ActionAddConnection:
		return "add_connection"
	case ActionRemoveNeuron:
		return "remove_neuron"
	case ActionMutateWeight:
		return "mutate_weight"
	case ActionMutateExponent:
		return "mutate_exponent"
	default:
		return "unknown"
	}
}

// MutationPolicy is a self-adapting distribution over the five
// mutation actions plus an overall probability that any mutation fires
// at all. The five weights are always renormalized to sum to 100,
// unless all five are zero (mutation disabled).
type MutationPolicy struct {
	SelfRate uint8

	SplitConnection float32
	AddConnection   float32
	Remove          float32
	MutateWeight    float32
	MutateExponent  float32
}

// NewMutationPolicy builds a policy from raw relative weights and
// renormalizes them to sum to 100.
func NewMutationPolicy(selfRate uint8, split, add, remove, mutateWeight, mutateExponent float32) MutationPolicy {
	p := MutationPolicy{
		SelfRate:        selfRate,
		SplitConnection: split,
		AddConnection:   add,
		Remove:          remove,
		MutateWeight:    mutateWeight,
		MutateExponent:  mutateExponent,
	}
	p.recalculate()
	return p
}

// NewEqualMutationPolicy spreads the five action weights evenly (20%
// each) at the given self rate.
func NewEqualMutationPolicy(selfRate uint8) MutationPolicy {
	return NewMutationPolicy(selfRate, 20, 20, 20, 20, 20)
}

// NoMutationPolicy disables mutation entirely: all five weights are
// zero, so GenMutationActions always returns an empty plan regardless
// of SelfRate.
func NoMutationPolicy() MutationPolicy {
	return MutationPolicy{}
}

func (p *MutationPolicy) weightSum() float32 {
	return p.SplitConnection + p.AddConnection + p.Remove + p.MutateWeight + p.MutateExponent
}

// recalculate renormalizes the five weights to sum to 100. A total of
// 0 is left alone (mutation disabled).
func (p *MutationPolicy) recalculate() {
	if p.SplitConnection < 0 {
		p.SplitConnection = 0
	}
	if p.AddConnection < 0 {
		p.AddConnection = 0
	}
	if p.Remove < 0 {
		p.Remove = 0
	}
	if p.MutateWeight < 0 {
		p.MutateWeight = 0
	}
	if p.MutateExponent < 0 {
		p.MutateExponent = 0
	}
	total := p.weightSum()
	if total == 0 {
		return
	}
	p.SplitConnection = p.SplitConnection * 100 / total
	p.AddConnection = p.AddConnection * 100 / total
	p.Remove = p.Remove * 100 / total
	p.MutateWeight = p.MutateWeight * 100 / total
	p.MutateExponent = p.MutateExponent * 100 / total
}

// adjust applies cmd to the five weights, floors each at zero, then
// renormalizes. Mirrors the Rust source's `adjust(cmd)` helper exactly.
func (p *MutationPolicy) adjust(cmd func(*MutationPolicy)) {
	cmd(p)
	p.recalculate()
}

// genRate draws a uniform integer in [0, 100].
func genRate(rng *rand.Rand) int {
	return rng.Intn(101)
}

// genMutationAction samples one of the five actions proportional to
// policy's current weights, by cumulative threshold over a fresh
// uniform draw in [0,100] — matching the Rust source's
// MutationRateExt::gen_mutation_action exactly (MutateExponent is the
// catch-all else branch; an all-zero policy returns SplitConnection on
// a draw of 0 and MutateExponent otherwise, but GenMutationActions
// never calls this with an all-zero policy).
func genMutationAction(rng *rand.Rand, p MutationPolicy) MutationAction {
	rate := float32(genRate(rng))
	if rate <= p.SplitConnection {
		return ActionSplitConnection
	}
	if rate <= p.SplitConnection+p.AddConnection {
		return ActionAddConnection
	}
	if rate <= p.SplitConnection+p.AddConnection+p.Remove {
		return ActionRemoveNeuron
	}
	if rate <= p.SplitConnection+p.AddConnection+p.Remove+p.MutateWeight {
		return ActionMutateWeight
	}
	return ActionMutateExponent
}

// GenMutationActions produces a plan of actions to apply during one
// replicate() call. The loop re-rolls continuation against SelfRate on
// every iteration and samples the emitted action fresh from the
// original, unmodified distribution every time; a scratch copy of the
// policy has the sampled action's weight halved purely to steer which
// action the *next* iteration's exploratory draw favours. This
// asymmetry is a deliberate port of a "suspect" design quirk in the
// source this engine was distilled from (see DESIGN.md); it is
// reproduced exactly rather than corrected.
func (p MutationPolicy) GenMutationActions(rng *rand.Rand) []MutationAction {
	if p.weightSum() == 0 {
		return nil
	}
	actions := make([]MutationAction, 0, MaxMutations)
	replica := p
	loopCount := 0
	for genRate(rng) < int(replica.SelfRate) && loopCount < MaxMutations {
		action := genMutationAction(rng, replica)
		switch action {
		case ActionSplitConnection:
			replica.adjust(func(s *MutationPolicy) { s.SplitConnection /= 2 })
		case ActionAddConnection:
			replica.adjust(func(s *MutationPolicy) { s.AddConnection /= 2 })
		case ActionRemoveNeuron:
			replica.adjust(func(s *MutationPolicy) { s.Remove /= 2 })
		case ActionMutateWeight:
			replica.adjust(func(s *MutationPolicy) { s.MutateWeight /= 2 })
		case ActionMutateExponent:
			replica.adjust(func(s *MutationPolicy) { s.MutateExponent /= 2 })
		}
		actions = append(actions, genMutationAction(rng, p))
		loopCount++
	}
	return actions
}

// AdjustMutationChances lets the policy self-adapt: up to 5 passes
// while a fresh draw stays below SelfRate, nudge one randomly chosen
// weight by a uniform amount in [-5, 5] (floored at 0) and
// renormalize; finally nudge SelfRate by -1, 0, or +1, clamped to
// [0, 100].
func (p *MutationPolicy) AdjustMutationChances(rng *rand.Rand) {
	const maxLoop = 5
	for i := 0; i < maxLoop && genRate(rng) < int(p.SelfRate); i++ {
		channel := rng.Intn(5)
		magnitude := rng.Float32() * 5
		if rng.Intn(2) == 0 {
			magnitude = -magnitude
		}
		switch channel {
		case 0:
			p.adjust(func(s *MutationPolicy) { s.SplitConnection += magnitude })
		case 1:
			p.adjust(func(s *MutationPolicy) { s.AddConnection += magnitude })
		case 2:
			p.adjust(func(s *MutationPolicy) { s.Remove += magnitude })
		case 3:
			p.adjust(func(s *MutationPolicy) { s.MutateWeight += magnitude })
		case 4:
			p.adjust(func(s *MutationPolicy) { s.MutateExponent += magnitude })
		}
	}

	delta := rng.Intn(3) - 1 // uniform in {-1, 0, 1}
	newRate := int(p.SelfRate) + delta
	if newRate < 0 {
		newRate = 0
	}
	if newRate > 100 {
		newRate = 100
	}
	p.SelfRate = uint8(newRate)
}
