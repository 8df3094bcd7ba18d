package splay

// descendTo performs a plain BST walk toward adj's key and returns either
// the exact match, or (if absent) the last node visited before the walk
// would have stepped onto a nil child — i.e. adj's would-be parent.
func (t *Tree) descendTo(adj Adjacency) NodeID {
	x := t.root
	for {
		switch {
		case sameKey(t.nodes[x].adj, adj):
			return x
		case less(t.nodes[x].adj, adj):
			if t.nodes[x].right == noNode {
				return x
			}
			x = t.nodes[x].right
		default:
			if t.nodes[x].left == noNode {
				return x
			}
			x = t.nodes[x].left
		}
	}
}

// Insert adds adj to the tree and returns an iterator to it. If an
// adjacency with the same (U, V) already exists, Insert is a no-op and
// returns an iterator to the existing node.
//
// Equivalent in effect to "split the tree just before adj's lower bound,
// attach the new node as the pivot between the two halves, and splay it":
// descendTo locates adj's would-be parent in a single walk, splaying it
// to the root performs the split, and splicing the new node in as the
// root with the old root demoted to one side is exactly that pivot
// attachment.
func (t *Tree) Insert(adj Adjacency) Iterator {
	if t.root == noNode {
		x := t.allocate(adj)
		t.root = x

		return Iterator{tree: t, node: x}
	}

	near := t.descendTo(adj)
	t.splay(near)
	root := t.root
	if sameKey(t.nodes[root].adj, adj) {
		return Iterator{tree: t, node: root} // duplicate: unchanged
	}

	pivot := t.allocate(adj)
	if less(t.nodes[root].adj, adj) {
		t.nodes[pivot].left = root
		t.nodes[pivot].right = t.nodes[root].right
		if t.nodes[pivot].right != noNode {
			t.nodes[t.nodes[pivot].right].parent = pivot
		}
		t.nodes[root].right = noNode
		t.nodes[root].parent = pivot
	} else {
		t.nodes[pivot].right = root
		t.nodes[pivot].left = t.nodes[root].left
		if t.nodes[pivot].left != noNode {
			t.nodes[t.nodes[pivot].left].parent = pivot
		}
		t.nodes[root].left = noNode
		t.nodes[root].parent = pivot
	}
	t.update(root)
	t.update(pivot)
	t.root = pivot

	return Iterator{tree: t, node: pivot}
}

// Erase removes the adjacency it designates. it must be a valid iterator
// into this tree (not past-the-end); Erase panics otherwise, since a
// past-the-end iterator here is a contract violation, not a domain
// error the tree should wrap and hand back to the caller.
func (t *Tree) Erase(it Iterator) {
	x := it.node
	if x == noNode {
		panic("splay: Erase on past-the-end iterator")
	}

	t.splay(x)
	left := t.nodes[x].left
	right := t.nodes[x].right
	switch {
	case left == noNode:
		t.root = right
		if right != noNode {
			t.nodes[right].parent = noNode
		}
	case right == noNode:
		t.root = left
		if left != noNode {
			t.nodes[left].parent = noNode
		}
	default:
		t.nodes[left].parent = noNode
		t.nodes[right].parent = noNode
		t.root = t.join(left, right)
	}
	t.release(x)
}

// Find looks up the adjacency (u, v). On a hit it splays the node to the
// root and returns (iterator, true). On a miss it still splays the last
// node visited during the walk (the standard splay-tree amortization
// trick) and returns (End(), false).
func (t *Tree) Find(u, v int) (Iterator, bool) {
	if t.root == noNode {
		return t.End(), false
	}

	target := Adjacency{U: u, V: v}
	x := t.root
	last := noNode
	for x != noNode {
		last = x
		switch {
		case sameKey(t.nodes[x].adj, target):
			t.splay(x)

			return Iterator{tree: t, node: x}, true
		case less(t.nodes[x].adj, target):
			x = t.nodes[x].right
		default:
			x = t.nodes[x].left
		}
	}
	t.splay(last)

	return t.End(), false
}

// LowerBound returns an iterator to the smallest adjacency >= (u, v), or
// End() if none exists. On success the result is splayed to the root.
func (t *Tree) LowerBound(u, v int) Iterator {
	target := Adjacency{U: u, V: v}
	x := t.root
	candidate := noNode
	for x != noNode {
		if !less(t.nodes[x].adj, target) {
			candidate = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	if candidate != noNode {
		t.splay(candidate)
	}

	return Iterator{tree: t, node: candidate}
}

// UpperBound returns an iterator to the smallest adjacency strictly
// greater than (u, v), or End() if none exists. On success the result is
// splayed to the root.
func (t *Tree) UpperBound(u, v int) Iterator {
	target := Adjacency{U: u, V: v}
	x := t.root
	candidate := noNode
	for x != noNode {
		if less(target, t.nodes[x].adj) {
			candidate = x
			x = t.nodes[x].left
		} else {
			x = t.nodes[x].right
		}
	}
	if candidate != noNode {
		t.splay(candidate)
	}

	return Iterator{tree: t, node: candidate}
}

// Begin returns an iterator to the in-order minimum, or End() if empty.
func (t *Tree) Begin() Iterator {
	if t.root == noNode {
		return t.End()
	}

	return Iterator{tree: t, node: t.minNode(t.root)}
}

// End returns the past-the-end iterator.
func (t *Tree) End() Iterator {
	return Iterator{tree: t, node: noNode}
}

// rankOf returns x's 1-based in-order rank, splaying x to the root as a
// side effect. noNode (past-the-end) ranks as size()+1 without touching
// the tree.
func (t *Tree) rankOf(x NodeID) int {
	if x == noNode {
		return t.Size() + 1
	}
	t.splay(x)

	return 1 + t.nodes[x].leftSize
}

// Select returns the node at 1-based in-order position k, or noNode if k
// is outside [1, Size()].
func (t *Tree) Select(k int) NodeID {
	if k < 1 || k > t.Size() {
		return noNode
	}

	x := t.root
	for {
		lss := t.nodes[x].leftSize
		switch {
		case lss == k-1:
			return x
		case lss >= k:
			x = t.nodes[x].left
		default:
			k = k - 1 - lss
			x = t.nodes[x].right
		}
	}
}

// SelectIterator returns the iterator at 1-based in-order position k, or
// End() if k is outside [1, Size()].
func (t *Tree) SelectIterator(k int) Iterator {
	return Iterator{tree: t, node: t.Select(k)}
}

// advance returns the node delta positions away from x in rank order,
// i.e. Select(rankOf(x) + delta). x == noNode (past-the-end) advances
// from a virtual rank of size()+1.
func (t *Tree) advance(x NodeID, delta int) NodeID {
	r := t.rankOf(x)

	return t.Select(r + delta)
}
