// Package randutil derives reproducible random streams from a single seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenGamma = 0x9e3779b97f4a7c15

// New returns a PCG generator seeded from seed. Equal seeds give equal
// sequences, which is what makes an auction replayable.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenGamma)))
}

// Stream returns the generator for one numbered stream under seed, so that
// e.g. each team's strategy and the dealer's shuffle draw independently.
func Stream(seed int64, stream int) *rand.Rand {
	return New(int64(splitmix(uint64(seed) ^ splitmix(uint64(stream)+1))))
}

// Resolve returns seed, or a clock-derived seed when seed is zero.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
