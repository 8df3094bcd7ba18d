// Package dsu provides a disjoint-set forest (union-find) over a fixed
// universe of N elements, with path compression and union by rank.
//
// graph.Connect uses Set to compute the connected components of an
// undirected graph before wiring a random spanning traversal across them.
package dsu
