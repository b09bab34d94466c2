// Package shuffle provides uniform in-place slice shuffling.
package shuffle

import "math/rand"

// Slice permutes s in place using the Fisher-Yates algorithm. Every
// permutation is equally likely. A nil rng uses the shared package source;
// tests pass a seeded one for deterministic order.
func Slice[T any](s []T, rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(s) - 1; i > 0; i-- {
		j := intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
