package rng

import "sync"

// Source is a deterministic 64-bit PRNG. The zero value is not usable;
// construct one with New, or use the process-wide Global.
//
// Source is not safe for concurrent use: konig is single-threaded by
// design (see the graph package), and a shared Source must not be handed
// to two goroutines.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed. A zero seed is remapped to a
// fixed non-zero constant, since xorshift64* never advances from state 0.
func New(seed uint64) *Source {
	s := &Source{}
	s.Seed(seed)

	return s
}

// Seed resets s to the state produced by seed, discarding prior output.
func (s *Source) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15 // golden-ratio constant; any non-zero works
	}
	s.state = seed
}

// next advances the xorshift64* state and returns the next raw 64-bit word.
func (s *Source) next() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x

	return x * 0x2545F4914F6CDD1D
}

// Uint64 returns the next raw 64-bit word. Exposed for callers that need
// bits directly (e.g. shuffles consuming more than one range draw per
// element).
func (s *Source) Uint64() uint64 {
	return s.next()
}

// IntRange returns a uniform integer in [lo, hi). Requires lo < hi; the
// caller guarantees this — the PRNG never fails and takes no error path.
func (s *Source) IntRange(lo, hi int) int {
	span := uint64(hi - lo)

	return lo + int(s.next()%span)
}

// Int63Range returns a uniform int64 in [lo, hi). Requires lo < hi.
func (s *Source) Int63Range(lo, hi int64) int64 {
	span := uint64(hi - lo)

	return lo + int64(s.next()%span)
}

// Float64Range returns a uniform float64 in [lo, hi). Requires lo < hi.
func (s *Source) Float64Range(lo, hi float64) float64 {
	// 53 bits of mantissa precision, matching math/rand's Float64 technique.
	frac := float64(s.next()>>11) / (1 << 53)

	return lo + frac*(hi-lo)
}

// Shuffle randomly permutes the first n elements visited by swap, using the
// standard Fisher-Yates walk from the end. Mirrors math/rand.Shuffle's
// contract so callers can reason about it the same way.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntRange(0, i+1)
		swap(i, j)
	}
}

// global is the process-wide convenience Source backing Srand/Global, for
// callers that want a package-level default without threading a *Source
// through every call. Library code should prefer an explicitly injected
// *Source (see graph.WithSource) for testability; global state is
// provided only as a thin wrapper.
var (
	globalMu sync.Mutex
	global   = New(1)
)

// Srand seeds the process-wide convenience Source. It is the Go analogue of
// the CLI's srand(int) entry point.
func Srand(seed uint64) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global.Seed(seed)
}

// Global returns the process-wide convenience Source. Callers that need
// isolation from other packages' draws should construct their own Source
// with New instead.
func Global() *Source {
	return global
}
