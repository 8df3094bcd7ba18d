// SPDX-License-Identifier: MIT
package graph

import "fmt"

// BuildPath adds edges (0,1), (1,2), ..., (N-2,N-1), forming a simple path
// over all N vertices. Requires N >= 2.
func (g *Graph) BuildPath() error {
	if g.n < 2 {
		return fmt.Errorf("graph: BuildPath(n=%d): %w", g.n, ErrTooFewNodes)
	}
	for v := 0; v < g.n-1; v++ {
		if err := g.AddEdge(v, v+1); err != nil {
			return fmt.Errorf("graph: BuildPath: %w", err)
		}
	}

	return nil
}

// BuildCycle adds a path over all N vertices plus the closing edge
// (N-1, 0), forming a simple cycle. Requires N >= 3.
func (g *Graph) BuildCycle() error {
	if g.n < 3 {
		return fmt.Errorf("graph: BuildCycle(n=%d): %w", g.n, ErrTooFewNodes)
	}
	if err := g.BuildPath(); err != nil {
		return fmt.Errorf("graph: BuildCycle: %w", err)
	}
	if err := g.AddEdge(g.n-1, 0); err != nil {
		return fmt.Errorf("graph: BuildCycle: %w", err)
	}

	return nil
}

// BuildStar adds edges (0,1), (0,2), ..., (0,N-1): vertex 0 is the hub.
// Requires N >= 2.
func (g *Graph) BuildStar() error {
	if g.n < 2 {
		return fmt.Errorf("graph: BuildStar(n=%d): %w", g.n, ErrTooFewNodes)
	}
	for v := 1; v < g.n; v++ {
		if err := g.AddEdge(0, v); err != nil {
			return fmt.Errorf("graph: BuildStar: %w", err)
		}
	}

	return nil
}

// BuildWheel adds a cycle over vertices [0, N-1) plus a hub at N-1
// connected to every rim vertex, forming a wheel. Requires N >= 4.
//
// The hub is vertex N-1, not the out-of-range N a naive rim-plus-hub
// count would suggest; its spokes close at (N-1, 0).
func (g *Graph) BuildWheel() error {
	if g.n < 4 {
		return fmt.Errorf("graph: BuildWheel(n=%d): %w", g.n, ErrTooFewNodes)
	}

	rim := g.n - 1
	for v := 0; v < rim-1; v++ {
		if err := g.AddEdge(v, v+1); err != nil {
			return fmt.Errorf("graph: BuildWheel: %w", err)
		}
	}
	if err := g.AddEdge(rim-1, 0); err != nil {
		return fmt.Errorf("graph: BuildWheel: %w", err)
	}
	for v := 0; v < rim; v++ {
		if err := g.AddEdge(rim, v); err != nil {
			return fmt.Errorf("graph: BuildWheel: %w", err)
		}
	}

	return nil
}

// BuildClique adds every edge among all N vertices, forming the complete
// graph K_N. Requires N >= 1.
func (g *Graph) BuildClique() error {
	if g.n < 1 {
		return fmt.Errorf("graph: BuildClique(n=%d): %w", g.n, ErrTooFewNodes)
	}
	for u := 1; u < g.n; u++ {
		for v := 0; v < u; v++ {
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("graph: BuildClique: %w", err)
			}
		}
	}

	return nil
}

// BuildTree draws a random recursive tree over all N vertices via
// BuildForest(N-1): every vertex v but 0 attaches once, to a parent drawn
// uniformly from [0, v), so the result is guaranteed to be a single
// spanning tree rather than a forest with more than one component. The
// result is not uniform over all labeled trees. Requires N >= 1.
func (g *Graph) BuildTree() error {
	if g.n < 1 {
		return fmt.Errorf("graph: BuildTree(n=%d): %w", g.n, ErrTooFewNodes)
	}
	if g.n == 1 {
		return nil
	}
	if err := g.BuildForest(g.n - 1); err != nil {
		return fmt.Errorf("graph: BuildTree: %w", err)
	}

	return nil
}
