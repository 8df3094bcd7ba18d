// SPDX-License-Identifier: MIT
//
// Package graph implements the graph engine: a fixed-size vertex set over
// an adjacency.Manager, uniform edge sampling via the
// rank↔edge bijections in rank.go, connectivity via dsu, and the scripted
// shape builders (path/cycle/star/wheel/clique/tree/forest/dag) as thin
// collaborators on top of AddEdge/AddEdges.
package graph
