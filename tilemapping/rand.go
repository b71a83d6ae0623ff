package tilemapping

import (
	"crypto/sha256"

	"lukechampine.com/frand"
)

// RandSource is the randomness a Bag draws with. *frand.RNG and
// *math/rand.Rand both satisfy it.
type RandSource interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// DefaultRandSource draws from frand's global, unseeded generator.
func DefaultRandSource() RandSource {
	return frandSource{}
}

// SeededRandSource returns a reproducible generator. The same seed always
// yields the same sequence of draws.
func SeededRandSource(seed string) RandSource {
	key := sha256.Sum256([]byte(seed))
	return frand.NewCustom(key[:], 1024, 12)
}
