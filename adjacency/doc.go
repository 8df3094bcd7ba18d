// Package adjacency wraps a splay.Tree with a secondary index: for every
// vertex u that appears as a first endpoint, firstAdj[u] and lastAdj[u]
// point to the lexicographically smallest and largest adjacency with
// first endpoint u. Manager.BeginAt/EndAt then scan a vertex's
// out-neighbors in O(1) additional time per vertex on top of the tree's
// O(log n) operations.
package adjacency
