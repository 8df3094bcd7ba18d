package adjacency

import "errors"

// ErrSelfLoop indicates Insert was asked to add an adjacency (u, u). The
// tree itself has no notion of loops; rejecting them is the manager's job.
var ErrSelfLoop = errors.New("adjacency: self-loop not allowed")

// ErrInvalidIterator indicates Erase was called with a past-the-end or
// zero-value iterator.
var ErrInvalidIterator = errors.New("adjacency: invalid iterator")

// ErrAdjacencyNotFound indicates EraseEdge referenced a pair absent from
// the tree.
var ErrAdjacencyNotFound = errors.New("adjacency: adjacency not found")

// ErrKthAbsentOutOfRange indicates KthAbsent was asked for a k outside
// [1, universeSize-len(existingRanks)].
var ErrKthAbsentOutOfRange = errors.New("adjacency: kth-absent rank out of range")
