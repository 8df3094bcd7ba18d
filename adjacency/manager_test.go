package adjacency_test

import (
	"errors"
	"testing"

	"github.com/algorithm-ninja/konig/adjacency"
	"github.com/algorithm-ninja/konig/splay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_FirstLastIndex asserts first_adj[u]/last_adj[u] track the
// in-order min/max among adjacencies with first endpoint u, per spec §8.
func TestManager_FirstLastIndex(t *testing.T) {
	m := adjacency.New()
	for _, v := range []int{5, 1, 9, 3} {
		_, err := m.InsertPair(0, v)
		require.NoError(t, err)
	}
	_, err := m.InsertPair(1, 7)
	require.NoError(t, err)

	assert.Equal(t, splay.Adjacency{U: 0, V: 1}, m.BeginAt(0).Adjacency())

	last := m.EndAt(0).Prev()
	assert.Equal(t, splay.Adjacency{U: 0, V: 9}, last.Adjacency())

	assert.False(t, m.BeginAt(2).Valid(), "vertex with no adjacencies yields End()")
}

// TestManager_SelfLoopRejected asserts the manager catches self-loops
// that the tree itself would happily store.
func TestManager_SelfLoopRejected(t *testing.T) {
	m := adjacency.New()
	_, err := m.InsertPair(4, 4)
	assert.True(t, errors.Is(err, adjacency.ErrSelfLoop))
	assert.Equal(t, 0, m.Size())
}

// TestManager_InsertDuplicateIsNoop asserts idempotent insertion, per spec §7.
func TestManager_InsertDuplicateIsNoop(t *testing.T) {
	m := adjacency.New()
	_, err := m.InsertPair(1, 2)
	require.NoError(t, err)
	_, err = m.InsertPair(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size())
}

// TestManager_EraseSoleAdjacencyDropsIndex asserts the index entries are
// dropped when the sole out-adjacency for a vertex is erased.
func TestManager_EraseSoleAdjacencyDropsIndex(t *testing.T) {
	m := adjacency.New()
	it, err := m.InsertPair(2, 8)
	require.NoError(t, err)

	require.NoError(t, m.Erase(it))
	assert.False(t, m.BeginAt(2).Valid())
	assert.False(t, m.EndAt(2).Valid())
	assert.Equal(t, 0, m.Size())
}

// TestManager_EraseFirstAdvancesIndex asserts erasing the current
// first_adj[u] advances the index to the new minimum.
func TestManager_EraseFirstAdvancesIndex(t *testing.T) {
	m := adjacency.New()
	_, _ = m.InsertPair(0, 1)
	_, _ = m.InsertPair(0, 5)
	first, ok := m.Find(0, 1)
	require.True(t, ok)

	require.NoError(t, m.Erase(first))
	assert.Equal(t, splay.Adjacency{U: 0, V: 5}, m.BeginAt(0).Adjacency())
}

// TestManager_EraseLastStepsBackIndex asserts erasing the current
// last_adj[u] steps the index back to the new maximum.
func TestManager_EraseLastStepsBackIndex(t *testing.T) {
	m := adjacency.New()
	_, _ = m.InsertPair(0, 1)
	_, _ = m.InsertPair(0, 5)
	last, ok := m.Find(0, 5)
	require.True(t, ok)

	require.NoError(t, m.Erase(last))
	lastRemaining := m.EndAt(0).Prev()
	assert.Equal(t, splay.Adjacency{U: 0, V: 1}, lastRemaining.Adjacency())
}

// TestManager_EraseEdgeNotFound asserts the sentinel error for an absent pair.
func TestManager_EraseEdgeNotFound(t *testing.T) {
	m := adjacency.New()
	err := m.EraseEdge(0, 1)
	assert.True(t, errors.Is(err, adjacency.ErrAdjacencyNotFound))
}

// TestManager_RangeScan asserts BeginAt/EndAt enumerate exactly a
// vertex's out-neighbors, in ascending second-endpoint order.
func TestManager_RangeScan(t *testing.T) {
	m := adjacency.New()
	for _, v := range []int{4, 1, 2} {
		_, _ = m.InsertPair(3, v)
	}
	_, _ = m.InsertPair(7, 0)

	var got []int
	for it := m.BeginAt(3); !it.Equal(m.EndAt(3)); it = it.Next() {
		got = append(got, it.Adjacency().V)
	}
	assert.Equal(t, []int{1, 2, 4}, got)
}

// TestKthAbsent_Scenario asserts the deterministic complement lookup
// matches a brute-force scan for a small universe with gaps.
func TestKthAbsent_Scenario(t *testing.T) {
	existing := []int64{2, 5, 6}
	var absent []int64
	for x := int64(0); x < 10; x++ {
		found := false
		for _, e := range existing {
			if e == x {
				found = true

				break
			}
		}
		if !found {
			absent = append(absent, x)
		}
	}

	for k := 1; k <= len(absent); k++ {
		got, err := adjacency.KthAbsent(k, 10, existing)
		require.NoError(t, err)
		assert.Equal(t, absent[k-1], got)
	}
}

// TestKthAbsent_OutOfRange asserts the bound check.
func TestKthAbsent_OutOfRange(t *testing.T) {
	_, err := adjacency.KthAbsent(0, 10, nil)
	assert.True(t, errors.Is(err, adjacency.ErrKthAbsentOutOfRange))

	_, err = adjacency.KthAbsent(8, 10, []int64{1, 2, 3})
	assert.True(t, errors.Is(err, adjacency.ErrKthAbsentOutOfRange))
}
