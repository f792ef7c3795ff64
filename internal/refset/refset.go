// Package refset is a test-only reference oracle for the integer-set
// algorithms under internal/recursive and the veb package: a Set3-backed
// set of uint64 plus linear Min/Next/Prev scans, used to differentially
// check the flattened tree against a structure simple enough to trust by
// inspection.
//
// It is grounded directly on the concurrency pattern of
// TomTonic/multimap's MultiMap: an RWMutex-guarded Set3 with one method
// per operation. The mutex buys nothing for a single-goroutine test but
// costs nothing either, and keeping it documents that a reference oracle
// used across parallel subtests must stay safe for concurrent use even
// though the tree under test (internal/recursive, veb.Tree) is not.
package refset

import (
	"sync"

	set3 "github.com/TomTonic/Set3"
)

// Oracle is a reference set of uint64 values, safe for concurrent use.
type Oracle struct {
	mu   sync.RWMutex
	vals *set3.Set3[uint64]
}

// New returns an empty Oracle.
func New() *Oracle {
	return &Oracle{vals: set3.Empty[uint64]()}
}

// Insert adds x and reports whether it was newly added.
func (o *Oracle) Insert(x uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.vals.Contains(x) {
		return false
	}
	o.vals.Add(x)
	return true
}

// Remove deletes x and reports whether it was present.
func (o *Oracle) Remove(x uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.vals.Contains(x) {
		return false
	}
	o.vals.Remove(x)
	return true
}

// Contains reports whether x is a member.
func (o *Oracle) Contains(x uint64) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.vals.Contains(x)
}

// Len reports the number of members.
func (o *Oracle) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return int(o.vals.Len())
}

// Min returns the smallest member, scanning linearly.
func (o *Oracle) Min() (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var (
		min   uint64
		found bool
	)
	o.vals.ForEach(func(v uint64) {
		if !found || v < min {
			min, found = v, true
		}
	})
	return min, found
}

// Max returns the largest member, scanning linearly.
func (o *Oracle) Max() (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var (
		max   uint64
		found bool
	)
	o.vals.ForEach(func(v uint64) {
		if !found || v > max {
			max, found = v, true
		}
	})
	return max, found
}

// Next returns the smallest member >= x, scanning linearly.
func (o *Oracle) Next(x uint64) (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var (
		best  uint64
		found bool
	)
	o.vals.ForEach(func(v uint64) {
		if v >= x && (!found || v < best) {
			best, found = v, true
		}
	})
	return best, found
}

// Prev returns the largest member <= x, scanning linearly.
func (o *Oracle) Prev(x uint64) (uint64, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var (
		best  uint64
		found bool
	)
	o.vals.ForEach(func(v uint64) {
		if v <= x && (!found || v > best) {
			best, found = v, true
		}
	})
	return best, found
}
