package adjacency

import (
	"fmt"

	"github.com/algorithm-ninja/konig/splay"
)

// Manager wraps a splay.Tree and indexes, per first-endpoint vertex, the
// first and last adjacency carrying that prefix.
//
// Manager is not safe for concurrent use.
type Manager struct {
	tree      *splay.Tree
	firstAdj  map[int]splay.Iterator
	lastAdj   map[int]splay.Iterator
	outDegree map[int]int
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{
		tree:      splay.New(),
		firstAdj:  make(map[int]splay.Iterator),
		lastAdj:   make(map[int]splay.Iterator),
		outDegree: make(map[int]int),
	}
}

// Size returns the number of adjacencies stored.
func (m *Manager) Size() int {
	return m.tree.Size()
}

// Insert adds adj to the tree and returns an iterator to it, updating the
// first/last index for adj.U. Inserting a duplicate (u, v) is an
// idempotent no-op that returns the existing iterator. Self-loops
// (U == V) are rejected with ErrSelfLoop.
func (m *Manager) Insert(adj splay.Adjacency) (splay.Iterator, error) {
	if adj.U == adj.V {
		return splay.Iterator{}, fmt.Errorf("adjacency: Insert(%d,%d): %w", adj.U, adj.V, ErrSelfLoop)
	}

	before := m.tree.Size()
	it := m.tree.Insert(adj)
	if m.tree.Size() == before {
		return it, nil // duplicate: tree unchanged, index already correct
	}

	m.outDegree[adj.U]++
	if cur, ok := m.firstAdj[adj.U]; !ok || it.Adjacency().V < cur.Adjacency().V {
		m.firstAdj[adj.U] = it
	}
	if cur, ok := m.lastAdj[adj.U]; !ok || it.Adjacency().V > cur.Adjacency().V {
		m.lastAdj[adj.U] = it
	}

	return it, nil
}

// InsertPair is a convenience for Insert(splay.Adjacency{U: u, V: v}),
// for callers that carry no weight.
func (m *Manager) InsertPair(u, v int) (splay.Iterator, error) {
	return m.Insert(splay.Adjacency{U: u, V: v})
}

// Erase removes the adjacency it designates, maintaining the first/last
// index for its first endpoint: if it was the sole adjacency for that
// vertex, both index entries are dropped; otherwise a first-index hit
// advances to the next adjacency and a last-index hit steps back to the
// previous one.
func (m *Manager) Erase(it splay.Iterator) error {
	if !it.Valid() {
		return fmt.Errorf("adjacency: Erase: %w", ErrInvalidIterator)
	}

	u := it.Adjacency().U
	wasFirst := it.Equal(m.firstAdj[u])
	wasLast := it.Equal(m.lastAdj[u])

	m.outDegree[u]--
	if m.outDegree[u] <= 0 {
		delete(m.firstAdj, u)
		delete(m.lastAdj, u)
		delete(m.outDegree, u)
	} else {
		// Compute neighbors before mutating the tree: Next/Prev walk the
		// node's current position, which Erase is about to invalidate.
		if wasFirst {
			m.firstAdj[u] = it.Next()
		}
		if wasLast {
			m.lastAdj[u] = it.Prev()
		}
	}

	m.tree.Erase(it)

	return nil
}

// EraseEdge removes the adjacency (u, v), or returns ErrAdjacencyNotFound
// if it is absent.
func (m *Manager) EraseEdge(u, v int) error {
	it, ok := m.tree.Find(u, v)
	if !ok {
		return fmt.Errorf("adjacency: EraseEdge(%d,%d): %w", u, v, ErrAdjacencyNotFound)
	}

	return m.Erase(it)
}

// Find looks up the adjacency (u, v).
func (m *Manager) Find(u, v int) (splay.Iterator, bool) {
	return m.tree.Find(u, v)
}

// Begin returns an iterator to the tree's in-order minimum, or End() if empty.
func (m *Manager) Begin() splay.Iterator {
	return m.tree.Begin()
}

// End returns the past-the-end iterator.
func (m *Manager) End() splay.Iterator {
	return m.tree.End()
}

// BeginAt returns firstAdj[u], or End() if u has no out-adjacencies.
func (m *Manager) BeginAt(u int) splay.Iterator {
	if it, ok := m.firstAdj[u]; ok {
		return it
	}

	return m.tree.End()
}

// EndAt returns lastAdj[u]+1 (the exclusive upper bound of u's
// out-adjacency range), or End() if u has no out-adjacencies.
func (m *Manager) EndAt(u int) splay.Iterator {
	if it, ok := m.lastAdj[u]; ok {
		return it.Next()
	}

	return m.tree.End()
}
