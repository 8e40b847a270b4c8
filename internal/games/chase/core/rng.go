package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Every random decision in the engine (maze shape, placement jitter,
// teleport destinations, movement tie-breaks) draws from one RNG seeded
// once per run. No engine code consults wall-clock time or any other
// ambient entropy.
type RNG struct {
	state uint64
}

// NewRNG creates a new generator with the given seed.
// The same seed always produces the identical output sequence.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 88172645463325252 // xorshift64 must not start at zero
	}
	return &RNG{state: s}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Shuffle performs a deterministic Fisher-Yates shuffle of n elements.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
