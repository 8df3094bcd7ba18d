// Package sampler draws K distinct integers uniformly from [lo, hi) while
// excluding an arbitrary sorted set of values, in O(K log K) time and
// without materializing the excluded interior.
//
// graph.AddEdges combines Sample with a bijective rank<->edge mapping to
// draw a uniform sample of not-yet-present edges without ever iterating
// the full edge universe.
package sampler
