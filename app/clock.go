package app

import "math/rand/v2"

// Millis returns the milliseconds since boot as counted by the tick source.
func (l *Logic) Millis() uint64 { return l.now }

// Seconds returns the time since boot in seconds.
func (l *Logic) Seconds() float64 { return float64(l.now) / 1000 }

// Random returns a number in [lo, hi), or lo when the range is empty.
func (l *Logic) Random(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + l.rng.IntN(hi-lo)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
