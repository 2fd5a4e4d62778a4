package genome_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baldhumanity/polyneat/genome"
)

// Invariant 5: the five action weights always sum to 0 or 100 (+-
// 1e-4), across construction and every subsequent adjustment.
func TestMutationPolicyWeightsStayNormalized(t *testing.T) {
	p := genome.NewMutationPolicy(50, 3, 1, 1, 1, 1)
	assertNormalized(t, p)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		p.AdjustMutationChances(rng)
		assertNormalized(t, p)
		assert.LessOrEqual(t, p.SelfRate, uint8(100))
	}
}

func assertNormalized(t *testing.T, p genome.MutationPolicy) {
	t.Helper()
	sum := float64(p.SplitConnection + p.AddConnection + p.Remove + p.MutateWeight + p.MutateExponent)
	if sum == 0 {
		return
	}
	assert.InDelta(t, 100.0, sum, 1e-4)
}

func TestNoMutationPolicyNeverEmitsActions(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	p := genome.NoMutationPolicy()
	for i := 0; i < 50; i++ {
		actions := p.GenMutationActions(rng)
		assert.Empty(t, actions)
	}
}

func TestGenMutationActionsRespectsCap(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := genome.NewMutationPolicy(100, 20, 20, 20, 20, 20)
	actions := p.GenMutationActions(rng)
	assert.LessOrEqual(t, len(actions), genome.MaxMutations)
}
