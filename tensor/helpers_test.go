package tensor_test

import "math/rand"

func mustRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
