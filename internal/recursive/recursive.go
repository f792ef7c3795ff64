// Package recursive implements the recursive van Emde Boas node and its
// five O(log B) algorithms (contains, insert, remove, next, prev) over a
// flat []uint64 buffer addressed by a *layout.Plan.
//
// A View does not own memory: it is a (buf, plan) pair, where buf is
// exactly plan.Words long and represents one node's region of the
// tree-wide buffer. Descending to a child re-slices buf at the child's
// offset and swaps in the child's plan; there is no allocation and no
// indirection beyond a slice header copy, matching spec.md's "recursion
// expressed as offset arithmetic, not pointers" requirement.
//
// The three representations (leaf, small, recursive) are dispatched by
// plan.Kind, generalizing the teacher's (TomTonic/multimap's art package)
// node-kind byte used to pick asNode64/asNode256/etc.: there the tag is
// read from data because ART node shapes are chosen by observed fanout;
// here the tag is a property of the level alone; see layout.PlanFor.
package recursive

import (
	"github.com/TomTonic/veb/internal/layout"
	"github.com/TomTonic/veb/internal/leaf"
	"github.com/TomTonic/veb/internal/small"
)

// Empty is the sentinel stored in a recursive node's min/max header when
// the node holds no elements. It exceeds every key representable by the
// largest supported width (32 bits), so it can never collide with a real
// member (spec.md section 9's "out-of-universe sentinel" choice).
const Empty uint64 = 1 << 32

// View is a node of the flattened tree: plan.Words words of buf,
// interpreted according to plan.Kind.
type View struct {
	buf  []uint64
	plan *layout.Plan
}

// NewView wraps buf (which must be exactly plan.Words long) as a node at
// the level plan describes.
func NewView(buf []uint64, plan *layout.Plan) View {
	if len(buf) != plan.Words {
		panic("recursive: buffer length does not match plan.Words")
	}
	return View{buf: buf, plan: plan}
}

func (v View) summary() View {
	p := v.plan.Summary()
	off := v.plan.SummaryOff
	return View{buf: v.buf[off : off+p.Words], plan: p}
}

func (v View) cluster(h uint64) View {
	p := v.plan.Cluster()
	off := v.plan.ClusterOff + int(h)*v.plan.ClusterWords
	return View{buf: v.buf[off : off+p.Words], plan: p}
}

func (v View) loMask() uint64 { return 1<<uint(v.plan.Lo) - 1 }

func (v View) split(x uint64) (hi, lo uint64) {
	return x >> uint(v.plan.Lo), x & v.loMask()
}

// IsEmpty reports whether the node holds no members.
func (v View) IsEmpty() bool {
	switch v.plan.Kind {
	case layout.KindLeaf:
		return v.buf[0] == 0
	case layout.KindSmall:
		return v.buf[v.plan.Words-1] == 0
	default:
		return v.buf[0] == Empty
	}
}

// Contains reports whether x is a member.
func (v View) Contains(x uint64) bool {
	switch v.plan.Kind {
	case layout.KindLeaf:
		return leaf.Contains(v.buf[0], uint(x))
	case layout.KindSmall:
		return small.Contains(v.buf, v.plan.Words-1, uint(x))
	default:
		if v.IsEmpty() {
			return false
		}
		if x == v.buf[0] || x == v.buf[1] {
			return true
		}
		hi, lo := v.split(x)
		return v.cluster(hi).Contains(lo)
	}
}

// Insert adds x and reports whether it was newly added.
func (v View) Insert(x uint64) bool {
	switch v.plan.Kind {
	case layout.KindLeaf:
		return leaf.Insert(&v.buf[0], uint(x))
	case layout.KindSmall:
		return small.Insert(v.buf, v.plan.Words-1, uint(x))
	default:
		return v.insertRecursive(x)
	}
}

func (v View) insertRecursive(x uint64) bool {
	if v.IsEmpty() {
		v.buf[0] = x
		v.buf[1] = x
		return true
	}
	if x == v.buf[0] || x == v.buf[1] {
		return false
	}
	if x < v.buf[0] {
		// Thread the old min into the clusters; it is never stored
		// alongside min itself (invariant I1).
		v.buf[0], x = x, v.buf[0]
	}
	if x > v.buf[1] {
		v.buf[1] = x
	}
	hi, lo := v.split(x)
	cl := v.cluster(hi)
	if cl.IsEmpty() {
		v.summary().Insert(hi)
	}
	return cl.Insert(lo)
}

// Remove deletes x and reports whether it was present.
func (v View) Remove(x uint64) bool {
	switch v.plan.Kind {
	case layout.KindLeaf:
		return leaf.Remove(&v.buf[0], uint(x))
	case layout.KindSmall:
		return small.Remove(v.buf, v.plan.Words-1, uint(x))
	default:
		return v.removeRecursive(x)
	}
}

func (v View) removeRecursive(x uint64) bool {
	if v.IsEmpty() {
		return false
	}
	mx := v.buf[1]
	if v.buf[0] == mx {
		if x == v.buf[0] {
			v.buf[0], v.buf[1] = Empty, Empty
			return true
		}
		return false
	}
	if x == v.buf[0] {
		sm := v.summary()
		hmin, ok := sm.Min()
		if !ok {
			panic("recursive: non-singleton node with empty summary")
		}
		cl := v.cluster(hmin)
		lmin, ok := cl.Min()
		if !ok {
			panic("recursive: summary marks cluster non-empty but cluster is empty")
		}
		x = hmin<<uint(v.plan.Lo) | lmin
		v.buf[0] = x
	}
	hi, lo := v.split(x)
	cl := v.cluster(hi)
	if !cl.Remove(lo) {
		return false
	}
	if cl.IsEmpty() {
		v.summary().Remove(hi)
	}
	if x == mx {
		sm := v.summary()
		if sm.IsEmpty() {
			v.buf[1] = v.buf[0]
		} else {
			hmax, _ := sm.Max()
			clMax := v.cluster(hmax)
			lmax, _ := clMax.Max()
			v.buf[1] = hmax<<uint(v.plan.Lo) | lmax
		}
	}
	return true
}

// Min returns the smallest member, if any.
func (v View) Min() (uint64, bool) {
	switch v.plan.Kind {
	case layout.KindLeaf:
		m := leaf.Min(v.buf[0])
		if m == leaf.None {
			return 0, false
		}
		return uint64(m), true
	case layout.KindSmall:
		m := small.Min(v.buf, v.plan.Words-1)
		if m == leaf.None {
			return 0, false
		}
		return uint64(m), true
	default:
		if v.IsEmpty() {
			return 0, false
		}
		return v.buf[0], true
	}
}

// Max returns the largest member, if any.
func (v View) Max() (uint64, bool) {
	switch v.plan.Kind {
	case layout.KindLeaf:
		m := leaf.Max(v.buf[0])
		if m == leaf.None {
			return 0, false
		}
		return uint64(m), true
	case layout.KindSmall:
		m := small.Max(v.buf, v.plan.Words-1)
		if m == leaf.None {
			return 0, false
		}
		return uint64(m), true
	default:
		if v.IsEmpty() {
			return 0, false
		}
		return v.buf[1], true
	}
}

// Next returns the smallest member >= x, if any.
func (v View) Next(x uint64) (uint64, bool) {
	switch v.plan.Kind {
	case layout.KindLeaf:
		n := leaf.Next(v.buf[0], uint(x))
		if n == leaf.None {
			return 0, false
		}
		return uint64(n), true
	case layout.KindSmall:
		n := small.Next(v.buf, v.plan.Words-1, uint(x))
		if n == leaf.None {
			return 0, false
		}
		return uint64(n), true
	default:
		return v.nextRecursive(x)
	}
}

func (v View) nextRecursive(x uint64) (uint64, bool) {
	if v.IsEmpty() || x > v.buf[1] {
		return 0, false
	}
	if x <= v.buf[0] {
		return v.buf[0], true
	}
	hi, lo := v.split(x)
	cl := v.cluster(hi)
	if clMax, ok := cl.Max(); ok && clMax >= lo {
		got, _ := cl.Next(lo)
		return hi<<uint(v.plan.Lo) | got, true
	}
	if hp, ok := v.summary().Next(hi + 1); ok {
		clp := v.cluster(hp)
		lp, _ := clp.Min()
		return hp<<uint(v.plan.Lo) | lp, true
	}
	return v.buf[1], true
}

// Prev returns the largest member <= x, if any.
func (v View) Prev(x uint64) (uint64, bool) {
	switch v.plan.Kind {
	case layout.KindLeaf:
		p := leaf.Prev(v.buf[0], uint(x))
		if p == leaf.None {
			return 0, false
		}
		return uint64(p), true
	case layout.KindSmall:
		p := small.Prev(v.buf, v.plan.Words-1, uint(x))
		if p == leaf.None {
			return 0, false
		}
		return uint64(p), true
	default:
		return v.prevRecursive(x)
	}
}

func (v View) prevRecursive(x uint64) (uint64, bool) {
	if v.IsEmpty() || x < v.buf[0] {
		return 0, false
	}
	if x >= v.buf[1] {
		return v.buf[1], true
	}
	hi, lo := v.split(x)
	cl := v.cluster(hi)
	if clMin, ok := cl.Min(); ok && clMin <= lo {
		got, _ := cl.Prev(lo)
		return hi<<uint(v.plan.Lo) | got, true
	}
	if hi > 0 {
		if hp, ok := v.summary().Prev(hi - 1); ok {
			clp := v.cluster(hp)
			lp, _ := clp.Max()
			return hp<<uint(v.plan.Lo) | lp, true
		}
	}
	return v.buf[0], true
}
