// SPDX-License-Identifier: MIT
package graph

import "strconv"

// Labeler maps a vertex index to its serialized label. It must be a pure,
// deterministic injection: two distinct vertices must never serialize to
// the same label.
type Labeler func(v int) string

// Weighter maps an edge (u, v) to a weight, returning (0, false) to mean
// "no weight for this edge" rather than requiring a separate
// null-weighter type for the unweighted case.
type Weighter func(u, v int) (weight int64, ok bool)

// DefaultLabeler is the decimal string of the vertex index.
func DefaultLabeler(v int) string {
	return strconv.Itoa(v)
}
