// Package rng provides the single deterministic randomness source konig
// routes all nondeterminism through.
//
// Source is a xorshift64* generator: given the same seed, Int63Range/IntRange/
// Float64Range calls produce the same sequence on every platform and every
// Go version, which math/rand's algorithm does not promise across releases.
// A fixed seed therefore yields byte-for-byte reproducible graphs, which is
// the whole point of a test-input generator.
package rng
