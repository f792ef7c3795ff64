// Package veb implements a set of integers over a bounded universe
// [0, 2^B) as a flattened van Emde Boas tree: one contiguous []uint64
// buffer addressed by word offsets computed once per B (internal/layout),
// rather than a tree of heap-allocated nodes. Contains, Insert, Remove,
// Next and Prev all run in O(log B) word operations.
//
// Use New[B]() when the universe width is known at compile time, and
// NewForCapacity when it is only known at runtime; both return the same
// Set behavior, just erased to an interface in the second case.
package veb
