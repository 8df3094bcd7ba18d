package splay

// Tree is an ordered set of Adjacency values keyed lexicographically on
// (U, V), implemented as an augmented splay tree over an arena of nodes.
//
// Tree is not safe for concurrent use; konig is single-threaded by design
// (see the graph package's concurrency notes).
type Tree struct {
	nodes []node
	free  []NodeID
	root  NodeID
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: noNode}
}

// Size returns the number of adjacencies currently stored, or 0 if empty.
func (t *Tree) Size() int {
	return t.size(t.root)
}

// size returns the augmented subtree_size of x, treating noNode as 0.
func (t *Tree) size(x NodeID) int {
	if x == noNode {
		return 0
	}

	return t.nodes[x].size
}

// update recomputes x's augmentation fields from its current children.
// Must be called after every structural mutation of x's children.
func (t *Tree) update(x NodeID) {
	n := &t.nodes[x]
	n.leftSize = t.size(n.left)
	n.size = 1 + n.leftSize + t.size(n.right)
}

// allocate returns a fresh node slot carrying adj, reusing a freed slot
// if one is available.
func (t *Tree) allocate(adj Adjacency) NodeID {
	n := node{parent: noNode, left: noNode, right: noNode, size: 1, leftSize: 0, adj: adj}
	if len(t.free) > 0 {
		id := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[id] = n

		return id
	}

	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}

// release returns x's slot to the free list. Any Iterator still holding x
// becomes invalid; the adjacency manager is responsible for never
// retaining one past Erase.
func (t *Tree) release(x NodeID) {
	t.free = append(t.free, x)
}

// dir reports 0 if x is p's left child, 1 if it is p's right child. x
// must be a child of p.
func (t *Tree) dir(x, p NodeID) int {
	if t.nodes[p].left == x {
		return 0
	}

	return 1
}

// rotate lifts x one level, demoting its parent. It is the single
// primitive both zig and the zig-zig/zig-zag pairs in splayUp compose
// from. After the structural swap it calls update on the demoted node
// then the promoted node.
func (t *Tree) rotate(x NodeID) {
	p := t.nodes[x].parent
	g := t.nodes[p].parent

	if t.dir(x, p) == 0 {
		// x is p's left child: right-rotate p down.
		t.nodes[p].left = t.nodes[x].right
		if t.nodes[x].right != noNode {
			t.nodes[t.nodes[x].right].parent = p
		}
		t.nodes[x].right = p
	} else {
		// x is p's right child: left-rotate p down.
		t.nodes[p].right = t.nodes[x].left
		if t.nodes[x].left != noNode {
			t.nodes[t.nodes[x].left].parent = p
		}
		t.nodes[x].left = p
	}
	t.nodes[p].parent = x
	t.nodes[x].parent = g
	if g != noNode {
		if t.nodes[g].left == p {
			t.nodes[g].left = x
		} else {
			t.nodes[g].right = x
		}
	}

	t.update(p) // demoted node first
	t.update(x) // then the promoted node
}

// splayUp rotates x to the top of whatever tree currently contains it
// (i.e. until x.parent == noNode), applying the zig/zig-zig/zig-zag cases,
// without touching t.root. It is the building block both Tree.splay
// (which also refreshes t.root) and join (which splays within a
// temporarily detached subtree) share.
func (t *Tree) splayUp(x NodeID) {
	for t.nodes[x].parent != noNode {
		p := t.nodes[x].parent
		g := t.nodes[p].parent
		if g == noNode {
			t.rotate(x) // zig: p is the root of its tree
			continue
		}
		if t.dir(x, p) == t.dir(p, g) {
			t.rotate(p) // zig-zig: same side twice, rotate parent first
		} else {
			t.rotate(x) // zig-zag: opposite sides, rotate x first
		}
		t.rotate(x)
	}
}

// splay rotates x to the root of the whole tree and refreshes t.root.
func (t *Tree) splay(x NodeID) {
	t.splayUp(x)
	t.root = x
}

// minNode returns the minimum-key node in the subtree rooted at x. x must
// not be noNode.
func (t *Tree) minNode(x NodeID) NodeID {
	for t.nodes[x].left != noNode {
		x = t.nodes[x].left
	}

	return x
}

// maxNode returns the maximum-key node in the subtree rooted at x. x must
// not be noNode.
func (t *Tree) maxNode(x NodeID) NodeID {
	for t.nodes[x].right != noNode {
		x = t.nodes[x].right
	}

	return x
}

// join merges two disjoint, already-detached subtrees l and r (both with
// parent == noNode) into one, requiring every key in l to be <= every key
// in r. It splays l's maximum to l's root — which then has no right
// child — attaches r as its right child, and returns the new root.
// If l is empty, r is returned unchanged (and vice versa).
func (t *Tree) join(l, r NodeID) NodeID {
	if l == noNode {
		return r
	}
	if r == noNode {
		return l
	}

	m := t.maxNode(l)
	t.splayUp(m)
	t.nodes[m].right = r
	t.nodes[r].parent = m
	t.update(m)

	return m
}
