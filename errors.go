package veb

import (
	"errors"
	"fmt"
)

// ErrCapacityTooLarge is returned by NewForCapacity when the requested
// capacity exceeds the largest universe any Width supports (2^32).
var ErrCapacityTooLarge = errors.New("veb: requested capacity exceeds the largest supported universe (2^32)")

// outOfUniverse panics with a message naming the offending key and the
// universe it fell outside of. Every Tree method that takes a key calls
// this instead of silently clamping or wrapping, per the same
// fail-loudly-on-programmer-error posture the teacher's art package uses
// for an unrecognized node kind.
func outOfUniverse(x, capacity uint64) {
	panic(fmt.Sprintf("veb: key out of universe: %d not in [0, %d)", x, capacity))
}
