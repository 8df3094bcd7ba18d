package sampler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/algorithm-ninja/konig/rng"
)

// ErrTooManySamples indicates the request asked for more distinct values
// than the complement of the exclusion set in [lo, hi) can provide.
var ErrTooManySamples = errors.New("sampler: too many samples requested")

// Sampler is a one-shot, non-restartable ascending sequence of K distinct
// 64-bit integers drawn uniformly from [lo, hi) minus an exclusion set.
//
// Sampler is not safe for concurrent use.
type Sampler struct {
	values []int64
	pos    int
}

// Next returns the next value in ascending order and true, or (0, false)
// once the sequence is exhausted.
func (s *Sampler) Next() (int64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++

	return v, true
}

// Len returns the number of values remaining to be consumed by Next.
func (s *Sampler) Len() int {
	return len(s.values) - s.pos
}

// Values returns the full sorted sample, regardless of how many Next calls
// have already been made. Mutating the returned slice is undefined.
func (s *Sampler) Values() []int64 {
	return s.values
}

// New builds a Sampler of k distinct integers drawn uniformly from
// [lo, hi), excluding every value in excluded (which need not be sorted;
// New sorts a private copy). Returns ErrTooManySamples if
// hi-lo-len(excluded) < k.
//
// Algorithm: draw k uniform integers from the compacted range
// [lo, hi-k-|E|+1), sort them ascending, then walk the sorted draws and the
// sorted exclusion set together, shifting each draw right by its index and
// by the count of exclusions it has to hop over. This is a reservoir-free
// uniform sample of the complement of E: the +i shift spreads duplicate
// draws into distinct slots, and the +j shift hops each slot over the
// exclusions that would otherwise collide with it.
func New(src *rng.Source, k int, lo, hi int64, excluded []int64) (*Sampler, error) {
	excl := make([]int64, len(excluded))
	copy(excl, excluded)
	sort.Slice(excl, func(i, j int) bool { return excl[i] < excl[j] })

	values, err := sample(src, k, lo, hi, excl)
	if err != nil {
		return nil, err
	}

	return &Sampler{values: values}, nil
}

// sample implements the draw-sort-shift algorithm against an
// already-sorted exclusion slice. It is split out from New, which sorts a
// private copy of the caller's exclusion set and passes that copy here.
func sample(src *rng.Source, k int, lo, hi int64, sortedExcluded []int64) ([]int64, error) {
	if k == 0 {
		return []int64{}, nil
	}

	excludedCount := int64(len(sortedExcluded))
	available := hi - lo - excludedCount
	if available < int64(k) {
		return nil, fmt.Errorf("sampler: k=%d lo=%d hi=%d excluded=%d: %w", k, lo, hi, excludedCount, ErrTooManySamples)
	}

	top := hi - int64(k) - excludedCount + 1 // compacted draw range is [lo, top)
	draws := make([]int64, k)
	for i := range draws {
		draws[i] = lo
	}
	if top > lo+1 {
		for i := range draws {
			draws[i] = src.Int63Range(lo, top)
		}
	}
	// top == lo+1 means the request exactly saturates the complement; every
	// draw is lo and the shift walk below spreads them out.
	sort.Slice(draws, func(i, j int) bool { return draws[i] < draws[j] })

	j := 0 // exclusions consumed so far; monotonic across the walk
	for i := 0; i < k; i++ {
		shifted := draws[i] + int64(i) + int64(j)
		for j < len(sortedExcluded) && sortedExcluded[j] <= shifted {
			j++
			shifted = draws[i] + int64(i) + int64(j)
		}
		draws[i] = shifted
	}

	return draws, nil
}

// Sample is a convenience one-shot form that returns the sorted slice
// directly instead of an iterator, for callers (like graph.AddEdges) that
// need the whole sample at once.
func Sample(src *rng.Source, k int, lo, hi int64, excluded []int64) ([]int64, error) {
	s, err := New(src, k, lo, hi, excluded)
	if err != nil {
		return nil, err
	}

	return s.Values(), nil
}
