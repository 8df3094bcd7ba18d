package graph

import "testing"

// TestTriangularRankRoundTrip asserts rank_to_edge(edge_to_rank(e)) = e and
// edge_to_rank(rank_to_edge(r)) = r over a universe small enough to
// exhaustively check, per spec.md §8's round-trip property.
func TestTriangularRankRoundTrip(t *testing.T) {
	const n = 12
	seen := make(map[int64]bool)
	for u := 1; u < n; u++ {
		for v := 0; v < u; v++ {
			r := triangularRank(u, v)
			if seen[r] {
				t.Fatalf("rank %d produced by more than one pair", r)
			}
			seen[r] = true

			gu, gv := triangularRankToUV(r)
			if gu != u || gv != v {
				t.Fatalf("triangularRankToUV(%d) = (%d,%d), want (%d,%d)", r, gu, gv, u, v)
			}
		}
	}

	universe := int64(n) * int64(n-1) / 2
	if int64(len(seen)) != universe {
		t.Fatalf("got %d distinct ranks, want %d (dense coverage of [0,U))", len(seen), universe)
	}
	for r := int64(0); r < universe; r++ {
		u, v := triangularRankToUV(r)
		if triangularRank(u, v) != r {
			t.Fatalf("edge_to_rank(rank_to_edge(%d)) = %d, want %d", r, triangularRank(u, v), r)
		}
	}
}

// TestDirectedRankRoundTrip mirrors TestTriangularRankRoundTrip for the
// off-diagonal directed universe.
func TestDirectedRankRoundTrip(t *testing.T) {
	const n = 9
	seen := make(map[int64]bool)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			r := directedRank(u, v, n)
			if seen[r] {
				t.Fatalf("rank %d produced by more than one pair", r)
			}
			seen[r] = true

			gu, gv := directedRankToUV(r, n)
			if gu != u || gv != v {
				t.Fatalf("directedRankToUV(%d) = (%d,%d), want (%d,%d)", r, gu, gv, u, v)
			}
		}
	}

	universe := int64(n) * int64(n-1)
	if int64(len(seen)) != universe {
		t.Fatalf("got %d distinct ranks, want %d", len(seen), universe)
	}
	for r := int64(0); r < universe; r++ {
		u, v := directedRankToUV(r, n)
		if directedRank(u, v, n) != r {
			t.Fatalf("edge_to_rank(rank_to_edge(%d)) = %d, want %d", r, directedRank(u, v, n), r)
		}
	}
}
