package adjacency

import (
	"fmt"
	"sort"
)

// KthAbsent returns the k-th (1-based) rank in [0, universeSize) that is
// NOT present in existingRanksSorted. Consistent with the sampler's
// notion of an "absent edge", this is the deterministic single-value
// analogue of sampler.Sample's complement-of-E draw — useful for
// deterministically picking one absent edge without spending randomness
// on it.
//
// existingRanksSorted must be sorted ascending and free of duplicates;
// the graph package already maintains canonical edge ranks in this form
// for AddEdges' own exclusion set, which is why this utility lives here
// rather than re-deriving a rank universe from the tree's own (u, v)
// contents (the tree has no notion of the graph engine's rank mapping).
//
// Returns ErrKthAbsentOutOfRange if k is outside
// [1, universeSize-len(existingRanksSorted)].
func KthAbsent(k int, universeSize int64, existingRanksSorted []int64) (int64, error) {
	available := universeSize - int64(len(existingRanksSorted))
	if k < 1 || int64(k) > available {
		return 0, fmt.Errorf("adjacency: KthAbsent(k=%d, universe=%d, existing=%d): %w",
			k, universeSize, len(existingRanksSorted), ErrKthAbsentOutOfRange)
	}

	// Binary search for the smallest x in [0, universeSize) such that the
	// count of absent values in [0, x] reaches k. countLE(x) counts
	// existing ranks <= x via binary search over the sorted slice.
	lo, hi := int64(0), universeSize
	for lo < hi {
		mid := lo + (hi-lo)/2
		countLE := int64(sort.Search(len(existingRanksSorted), func(i int) bool {
			return existingRanksSorted[i] > mid
		}))
		absentThroughMid := mid + 1 - countLE
		if absentThroughMid >= int64(k) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo, nil
}
