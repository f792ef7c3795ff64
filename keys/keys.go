// Package keys adapts string keys onto the dense integer universe a
// veb.Tree requires, the way TomTonic/multimap's key.go adapts strings
// (and every primitive numeric type) onto the byte-slice Keys its
// MultiMap stores.
//
// That mapping is lossless and order-preserving: it is a Key built from
// the string's own bytes. This one cannot be, because a veb.Tree's
// universe is a dense range of integers, not an arbitrary byte space. A
// string is first normalized to Unicode NFC (same normalization
// FromString uses, via golang.org/x/text/unicode/norm, so that two
// byte-distinct but canonically-equivalent strings collapse to the same
// key) and then folded down to a uint32 with FNV-1a. The result is a
// uniformly distributed but lossy key: two distinct normalized strings
// occasionally hash to the same uint32, and there is no inverse. Hash(s)
// is only useful when that tradeoff is acceptable and the caller still
// wants vEB's O(log B) membership/successor operations rather than a
// hash map's O(1) membership but no ordering at all.
package keys

import (
	"hash/fnv"

	"golang.org/x/text/unicode/norm"
)

// Hash returns the FNV-1a hash, over the NFC-normalized UTF-8 encoding of
// s, reduced to the 32-bit universe a Tree[veb.W32] indexes.
func Hash(s string) uint32 {
	normalized := norm.NFC.String(s)
	h := fnv.New32a()
	_, _ = h.Write([]byte(normalized))
	return h.Sum32()
}

// HashUint64 is Hash widened to uint64, for callers that compose it with
// veb's Set interface directly (Set.Insert et al. take uint64).
func HashUint64(s string) uint64 {
	return uint64(Hash(s))
}
