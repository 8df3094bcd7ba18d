// SPDX-License-Identifier: MIT
package graph

import "errors"

// ErrInvalidArgument indicates a vertex index outside [0, N) or a negative
// count was passed to a mutator.
var ErrInvalidArgument = errors.New("graph: invalid argument")

// ErrTooManyEdges indicates a requested edge count exceeds the number of
// not-yet-present edges in the relevant universe.
var ErrTooManyEdges = errors.New("graph: too many edges requested")

// ErrTooFewNodes indicates a shape builder was asked to run on a vertex
// count structurally too small for the shape (e.g. a wheel on N < 4).
var ErrTooFewNodes = errors.New("graph: too few nodes for this shape")

// ErrNotImplemented indicates strongly-connecting a directed graph, which
// has no single canonical algorithm and is left unsupported rather than
// guessing one.
var ErrNotImplemented = errors.New("graph: not implemented")
