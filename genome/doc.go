// Package genome implements the polynomial-NEAT topology and mutation
// engine: neurons wired by weighted, exponentiated edges, a
// self-adapting mutation policy, and the replicate pipeline (deep
// clone, mutate, cycle-repair) a caller drives once per generation.
//
// Basic usage:
//
//	policy := genome.NewEqualMutationPolicy(50)
//	rng := rand.New(rand.NewSource(1))
//
//	top, err := genome.New(2, 1, policy, rng)
//	if err != nil {
//		log.Fatalf("building topology: %v", err)
//	}
//
//	net := graphnet.New(top)
//	out := net.Predict([]float32{1, 0})
//
//	child := top.Replicate(rng)
package genome
