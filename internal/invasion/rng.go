package invasion

// rng is a deterministic pseudo-random number generator.
// Its whole state is one word, so snapshots can capture it.
type rng struct {
	state uint64
}

// newRNG creates a generator for the given seed.
func newRNG(seed int64) *rng {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

// next advances the 64-bit LCG and returns its high bits mixed into the low ones.
func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state ^ (r.state >> 29)
}

// Intn returns a random int in [0, n).
func (r *rng) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}
