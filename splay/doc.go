// Package splay implements the augmented splay tree that backs konig's
// rank-indexed adjacency store.
//
// Tree keeps an ordered set of directed Adjacency pairs keyed
// lexicographically on (U, V), with every node augmented by its subtree
// size and its left subtree's size so that Rank/Select run in amortized
// O(log n) alongside the usual Insert/Erase/LowerBound/UpperBound.
//
// Nodes live in an arena (Tree.nodes, addressed by NodeID) rather than
// behind individually heap-allocated pointers: this removes the raw
// parent-pointer aliasing hazard of a naive pointer-based splay tree and
// keeps Iterator — a (tree, NodeID) pair — trivially copyable and stable
// across splays.
package splay
