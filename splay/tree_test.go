package splay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkAugmentation walks every node and asserts spec §8's two universal
// size invariants: subtree_size(x) = 1 + size(left) + size(right), and
// left_subtree_size(x) = size(left(x)).
func checkAugmentation(t *testing.T, tr *Tree, x NodeID) {
	t.Helper()
	if x == noNode {
		return
	}
	n := tr.nodes[x]
	wantSize := 1 + tr.size(n.left) + tr.size(n.right)
	assert.Equal(t, wantSize, n.size, "subtree_size mismatch at node %d", x)
	assert.Equal(t, tr.size(n.left), n.leftSize, "left_subtree_size mismatch at node %d", x)
	checkAugmentation(t, tr, n.left)
	checkAugmentation(t, tr, n.right)
}

// inorderKeys walks the tree in order and asserts strict ascending order
// (no duplicates), returning the visited keys.
func inorderKeys(t *testing.T, tr *Tree) []Adjacency {
	t.Helper()
	var out []Adjacency
	var walk func(x NodeID)
	walk = func(x NodeID) {
		if x == noNode {
			return
		}
		walk(tr.nodes[x].left)
		out = append(out, tr.nodes[x].adj)
		walk(tr.nodes[x].right)
	}
	walk(tr.root)
	for i := 1; i < len(out); i++ {
		assert.True(t, less(out[i-1], out[i]), "not strictly increasing at %d: %v then %v", i, out[i-1], out[i])
	}

	return out
}

func TestTree_InsertAugmentationAndOrder(t *testing.T) {
	tr := New()
	r := rand.New(rand.NewSource(1))
	seen := make(map[[2]int]bool)
	for i := 0; i < 500; i++ {
		u, v := r.Intn(50), r.Intn(50)
		if u == v {
			continue
		}
		tr.Insert(Adjacency{U: u, V: v})
		seen[[2]int{u, v}] = true
	}
	checkAugmentation(t, tr, tr.root)
	keys := inorderKeys(t, tr)
	assert.Equal(t, len(seen), len(keys))
	assert.Equal(t, len(seen), tr.Size())
}

func TestTree_InsertDuplicateIsNoop(t *testing.T) {
	tr := New()
	it1 := tr.Insert(Adjacency{U: 1, V: 2, Weight: 10, HasWeight: true})
	it2 := tr.Insert(Adjacency{U: 1, V: 2, Weight: 999, HasWeight: true})
	assert.Equal(t, it1.node, it2.node)
	assert.Equal(t, int64(10), it2.Adjacency().Weight, "duplicate insert must not overwrite existing node")
	assert.Equal(t, 1, tr.Size())
}

func TestTree_RankSelectRoundTrip(t *testing.T) {
	tr := New()
	var nodes []NodeID
	for i := 0; i < 10; i++ {
		it := tr.Insert(Adjacency{U: i, V: i + 100})
		nodes = append(nodes, it.node)
	}
	for k := 1; k <= tr.Size(); k++ {
		x := tr.Select(k)
		require.NotEqual(t, noNode, x)
		assert.Equal(t, k, tr.rankOf(x))
	}
	for _, x := range nodes {
		r := tr.rankOf(x)
		assert.Equal(t, x, tr.Select(r))
	}
}

func TestTree_SelectOutOfRange(t *testing.T) {
	tr := New()
	tr.Insert(Adjacency{U: 0, V: 1})
	assert.Equal(t, noNode, tr.Select(0))
	assert.Equal(t, noNode, tr.Select(2))
}

func TestTree_LowerUpperBound(t *testing.T) {
	tr := New()
	for _, uv := range [][2]int{{1, 2}, {1, 5}, {3, 1}, {3, 9}, {5, 0}} {
		tr.Insert(Adjacency{U: uv[0], V: uv[1]})
	}

	lb := tr.LowerBound(3, 1)
	require.True(t, lb.Valid())
	assert.Equal(t, Adjacency{U: 3, V: 1}, lb.Adjacency())

	ub := tr.UpperBound(3, 1)
	require.True(t, ub.Valid())
	assert.Equal(t, Adjacency{U: 3, V: 9}, ub.Adjacency())

	lbMiss := tr.LowerBound(3, 2)
	require.True(t, lbMiss.Valid())
	assert.Equal(t, Adjacency{U: 3, V: 9}, lbMiss.Adjacency())

	lbEnd := tr.LowerBound(9, 0)
	assert.False(t, lbEnd.Valid())
}

func TestTree_EraseAllOrders(t *testing.T) {
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 0}, {2, 5}, {3, 3}}
	for start := 0; start < len(pairs); start++ {
		tr := New()
		for _, uv := range pairs {
			tr.Insert(Adjacency{U: uv[0], V: uv[1]})
		}
		for i := 0; i < len(pairs); i++ {
			idx := (start + i) % len(pairs)
			it, ok := tr.Find(pairs[idx][0], pairs[idx][1])
			require.True(t, ok)
			tr.Erase(it)
			checkAugmentation(t, tr, tr.root)
			inorderKeys(t, tr)
		}
		assert.Equal(t, 0, tr.Size())
		assert.Equal(t, noNode, tr.root)
	}
}

func TestTree_FindMissAndHit(t *testing.T) {
	tr := New()
	tr.Insert(Adjacency{U: 1, V: 2})
	tr.Insert(Adjacency{U: 3, V: 4})

	it, ok := tr.Find(1, 2)
	assert.True(t, ok)
	assert.Equal(t, Adjacency{U: 1, V: 2}, it.Adjacency())

	_, ok = tr.Find(9, 9)
	assert.False(t, ok)
}

func TestIterator_NextPrevAndPastTheEnd(t *testing.T) {
	tr := New()
	for i := 0; i < 5; i++ {
		tr.Insert(Adjacency{U: 0, V: i})
	}

	it := tr.Begin()
	var seen []int
	for it.Valid() {
		seen = append(seen, it.Adjacency().V)
		it = it.Next()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.False(t, it.Valid()) // past-the-end

	back := it.Prev()
	require.True(t, back.Valid())
	assert.Equal(t, 4, back.Adjacency().V)
}

func TestIterator_Sub(t *testing.T) {
	tr := New()
	var its []Iterator
	for i := 0; i < 4; i++ {
		its = append(its, tr.Insert(Adjacency{U: 0, V: i}))
	}
	first := tr.Begin()
	end := tr.End()
	assert.Equal(t, tr.Size(), end.Sub(first))
	assert.Equal(t, -tr.Size(), first.Sub(end))
}

func TestTree_EmptySizeAndBeginEnd(t *testing.T) {
	tr := New()
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, tr.End(), tr.Begin())
	assert.False(t, tr.Begin().Valid())
}
