package splay

// Adjacency is a directed pair (U, V) with an optional Weight, ordered
// lexicographically on (U, V). U must not equal V; that constraint is
// enforced by the adjacency manager, not by the tree itself — the tree
// never throws on invalid arguments, it just orders whatever it's given.
type Adjacency struct {
	U, V      int
	Weight    int64
	HasWeight bool
}

// sameKey reports whether a and b share the same (U, V) identity, ignoring
// Weight — the tree orders and deduplicates on (U, V) alone.
func sameKey(a, b Adjacency) bool {
	return a.U == b.U && a.V == b.V
}

// less reports whether a sorts strictly before b under the tree's
// lexicographic (U, V) order.
func less(a, b Adjacency) bool {
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

// NodeID addresses a node within a Tree's arena. noNode is the sentinel
// for "no node" (nil's analogue), used for absent children/parents and
// for the past-the-end iterator position.
type NodeID int32

const noNode NodeID = -1

// node is one arena slot. parent/left/right are NodeID links; size is the
// augmented subtree_size; leftSize caches size(left) so Rank/Select read
// it without an extra hop.
type node struct {
	parent, left, right NodeID
	size                int
	leftSize            int
	adj                 Adjacency
}

// Iterator is a bidirectional, random-access handle into a Tree. It holds
// a back-reference to the tree and a node handle rather than a raw
// pointer into the arena, so it stays valid across arena slot reuse as
// long as the designated node hasn't been erased. The zero Iterator is
// not valid; use Tree.Begin/Tree.End/Tree.LowerBound etc. to obtain one.
//
// A past-the-end Iterator carries node == noNode. Incrementing a
// past-the-end Iterator is undefined; decrementing one navigates to the
// tree's maximum.
type Iterator struct {
	tree *Tree
	node NodeID
}

// Valid reports whether it designates a real node (false for past-the-end
// and for the zero Iterator).
func (it Iterator) Valid() bool {
	return it.tree != nil && it.node != noNode
}

// Adjacency returns the adjacency the iterator designates. Calling it on
// a past-the-end iterator panics, mirroring dereferencing an invalid
// iterator.
func (it Iterator) Adjacency() Adjacency {
	if it.node == noNode {
		panic("splay: Adjacency() on past-the-end iterator")
	}

	return it.tree.nodes[it.node].adj
}

// Next returns the iterator for the in-order successor (Advance(it, 1)).
func (it Iterator) Next() Iterator {
	return it.Advance(1)
}

// Prev returns the iterator for the in-order predecessor (Advance(it, -1)).
func (it Iterator) Prev() Iterator {
	return it.Advance(-1)
}

// Advance returns the iterator delta positions away in rank order,
// equivalent to Select(Rank(it) + delta). Past the valid range it returns
// the past-the-end iterator.
func (it Iterator) Advance(delta int) Iterator {
	return Iterator{tree: it.tree, node: it.tree.advance(it.node, delta)}
}

// Rank returns the iterator's 1-based in-order position, or size()+1 for
// a past-the-end iterator.
func (it Iterator) Rank() int {
	return it.tree.rankOf(it.node)
}

// Sub returns the signed difference it.Rank() - other.Rank(). Iterators
// from different trees are not comparable and Sub's result is undefined
// for that case.
func (it Iterator) Sub(other Iterator) int {
	return it.Rank() - other.Rank()
}

// Equal reports whether it and other designate the same node of the same
// tree. Two past-the-end iterators of the same tree are equal.
func (it Iterator) Equal(other Iterator) bool {
	return it.tree == other.tree && it.node == other.node
}
