// SPDX-License-Identifier: MIT
package graph

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/algorithm-ninja/konig/adjacency"
	"github.com/algorithm-ninja/konig/dsu"
	"github.com/algorithm-ninja/konig/rng"
	"github.com/algorithm-ninja/konig/sampler"
)

// Graph is a fixed-size vertex set with a directedness flag, backed by an
// adjacency.Manager.
//
// Graph is not safe for concurrent mutation: unlike a mutex-guarded graph,
// callers needing concurrent access must synchronize externally.
type Graph struct {
	n        int
	directed bool
	adj      *adjacency.Manager
	src      *rng.Source
	labeler  Labeler
	weighter Weighter
}

// NewUndirected builds an N-vertex undirected graph with no edges.
func NewUndirected(n int, opts ...Option) (*Graph, error) {
	return newGraph(n, false, opts...)
}

// NewDirected builds an N-vertex directed graph with no edges.
func NewDirected(n int, opts ...Option) (*Graph, error) {
	return newGraph(n, true, opts...)
}

func newGraph(n int, directed bool, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graph: New(n=%d): %w", n, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)

	return &Graph{
		n:        n,
		directed: directed,
		adj:      adjacency.New(),
		src:      cfg.src,
		labeler:  cfg.labeler,
		weighter: cfg.weighter,
	}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Directed reports whether g stores directed adjacencies.
func (g *Graph) Directed() bool { return g.directed }

// EdgeCount returns the number of canonical (de-duplicated) edges.
func (g *Graph) EdgeCount() int {
	return len(g.canonicalEdges())
}

func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge inserts the edge (u, v): both directions for an undirected
// graph, only (u, v) for a directed one. Self-loops and out-of-range
// indices fail with ErrInvalidArgument / the manager's ErrSelfLoop.
func (g *Graph) AddEdge(u, v int) error {
	if !g.validVertex(u) || !g.validVertex(v) {
		return fmt.Errorf("graph: AddEdge(%d,%d): %w", u, v, ErrInvalidArgument)
	}
	if _, err := g.adj.InsertPair(u, v); err != nil {
		return fmt.Errorf("graph: AddEdge(%d,%d): %w", u, v, err)
	}
	if !g.directed {
		if _, err := g.adj.InsertPair(v, u); err != nil {
			return fmt.Errorf("graph: AddEdge(%d,%d): %w", u, v, err)
		}
	}

	return nil
}

// canonicalEdges returns every canonical adjacency: for undirected/DAG
// pairs, the u > v half; for directed, every stored adjacency (already
// unique since there is no mirrored entry).
func (g *Graph) canonicalEdges() []struct{ U, V int } {
	var out []struct{ U, V int }
	for it := g.adj.Begin(); it.Valid(); it = it.Next() {
		a := it.Adjacency()
		if g.directed || a.U > a.V {
			out = append(out, struct{ U, V int }{a.U, a.V})
		}
	}

	return out
}

// canonicalRanks returns, sorted ascending, the ranks of the canonical
// edges currently present, in the universe selected by triangular: the
// triangular (undirected/DAG) rank space of the u > v adjacencies when
// true, the off-diagonal directed one otherwise. The choice is independent
// of g.directed so BuildDAG can compute a triangular exclusion set on a
// directed graph; with triangular false an undirected graph yields no ranks.
func (g *Graph) canonicalRanks(triangular bool) []int64 {
	var ranks []int64
	for it := g.adj.Begin(); it.Valid(); it = it.Next() {
		a := it.Adjacency()
		if triangular {
			if a.U > a.V {
				ranks = append(ranks, triangularRank(a.U, a.V))
			}

			continue
		}
		if g.directed {
			ranks = append(ranks, directedRank(a.U, a.V, g.n))
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	return ranks
}

// AddEdges adds exactly m new edges, each drawn uniformly from the
// not-yet-present edges of the graph's universe (triangular for
// undirected, off-diagonal for directed).
func (g *Graph) AddEdges(m int) error {
	if m < 0 {
		return fmt.Errorf("graph: AddEdges(m=%d): %w", m, ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}

	var universe int64
	var excl []int64
	if g.directed {
		universe = int64(g.n) * int64(g.n-1)
		excl = g.canonicalRanks(false)
	} else {
		universe = int64(g.n) * int64(g.n-1) / 2
		excl = g.canonicalRanks(true)
	}

	ranks, err := sampler.Sample(g.src, m, 0, universe, excl)
	if err != nil {
		return g.wrapSampleErr("AddEdges", m, err)
	}

	for _, r := range ranks {
		var u, v int
		if g.directed {
			u, v = directedRankToUV(r, g.n)
		} else {
			u, v = triangularRankToUV(r)
		}
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("graph: AddEdges(m=%d): %w", m, err)
		}
	}

	return nil
}

// BuildDAG adds m new directed edges (u, v) with u > v, drawn uniformly
// from the not-yet-present pairs of the triangular universe, on a directed
// graph (so the emitted edges form a DAG under the natural vertex order).
// Valid only on a directed graph; ErrInvalidArgument otherwise.
func (g *Graph) BuildDAG(m int) error {
	if !g.directed {
		return fmt.Errorf("graph: BuildDAG: %w", ErrInvalidArgument)
	}
	if m < 0 {
		return fmt.Errorf("graph: BuildDAG(m=%d): %w", m, ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}

	universe := int64(g.n) * int64(g.n-1) / 2
	excl := g.canonicalRanks(true)

	ranks, err := sampler.Sample(g.src, m, 0, universe, excl)
	if err != nil {
		return g.wrapSampleErr("BuildDAG", m, err)
	}

	for _, r := range ranks {
		u, v := triangularRankToUV(r)
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("graph: BuildDAG(m=%d): %w", m, err)
		}
	}

	return nil
}

func (g *Graph) wrapSampleErr(method string, m int, err error) error {
	if errors.Is(err, sampler.ErrTooManySamples) {
		return fmt.Errorf("graph: %s(m=%d): %w", method, m, ErrTooManyEdges)
	}

	return fmt.Errorf("graph: %s(m=%d): %w", method, m, err)
}

// Connect adds the minimum number of edges to make an undirected graph
// connected: a uniformly random spanning tree over the current connected
// components. A no-op if already connected. Directed graphs return
// ErrNotImplemented: strongly-connecting a digraph requires choosing which
// components to chain and in what direction, and there's no canonical
// uniform distribution over those choices.
func (g *Graph) Connect() error {
	if g.directed {
		return fmt.Errorf("graph: Connect: %w", ErrNotImplemented)
	}

	ds := dsu.New(g.n)
	for it := g.adj.Begin(); it.Valid(); it = it.Next() {
		a := it.Adjacency()
		if _, err := ds.Union(a.U, a.V); err != nil {
			return fmt.Errorf("graph: Connect: %w", err)
		}
	}

	order := make([]int, g.n)
	for i := range order {
		order[i] = i
	}
	g.src.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	seen := make(map[int]bool, g.n)
	var reps []int
	for _, v := range order {
		root, err := ds.Find(v)
		if err != nil {
			return fmt.Errorf("graph: Connect: %w", err)
		}
		if !seen[root] {
			seen[root] = true
			reps = append(reps, v)
		}
	}

	for i := 1; i < len(reps); i++ {
		j := g.src.IntRange(0, i)
		if err := g.AddEdge(reps[j], reps[i]); err != nil {
			return fmt.Errorf("graph: Connect: %w", err)
		}
	}

	return nil
}

// BuildForest adds m edges forming a forest: for each of m vertices v
// drawn uniformly (without replacement) from [0, N-1), attaches edge
// (random(0, v+1), v+1) — every attach target strictly increases, so no
// cycle is ever possible.
func (g *Graph) BuildForest(m int) error {
	if m < 0 {
		return fmt.Errorf("graph: BuildForest(m=%d): %w", m, ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}

	values, err := sampler.Sample(g.src, m, 0, int64(g.n-1), nil)
	if err != nil {
		return g.wrapSampleErr("BuildForest", m, err)
	}

	for _, v64 := range values {
		v := int(v64)
		parent := g.src.IntRange(0, v+1)
		if err := g.AddEdge(parent, v+1); err != nil {
			return fmt.Errorf("graph: BuildForest(m=%d): %w", m, err)
		}
	}

	return nil
}

// String serializes the graph as: first line "N E", then E lines of
// "label(u) label(v) [weight]", edges in randomized order, no trailing
// newline.
func (g *Graph) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)

	return sb.String()
}

// WriteTo writes the same serialization as String to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	edges := g.canonicalEdges()
	g.src.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d", g.n, len(edges))
	for _, e := range edges {
		sb.WriteByte('\n')
		sb.WriteString(g.labeler(e.U))
		sb.WriteByte(' ')
		sb.WriteString(g.labeler(e.V))
		if g.weighter != nil {
			if weight, ok := g.weighter(e.U, e.V); ok {
				fmt.Fprintf(&sb, " %d", weight)
			}
		}
	}

	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}
