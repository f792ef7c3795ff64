package veb

import (
	"github.com/TomTonic/veb/internal/layout"
	"github.com/TomTonic/veb/internal/recursive"
)

// Tree is a dense integer set over the universe [0, 2^B), implemented as
// a single flattened van Emde Boas tree backed by one []uint64 buffer.
// The zero value is not usable; construct one with New.
type Tree[B Width] struct {
	buf  []uint64
	plan *layout.Plan
	bits int
}

// New allocates an empty Tree over the universe B describes.
func New[B Width]() *Tree[B] {
	var w B
	b := w.bits()
	plan := layout.PlanFor(b)
	buf := make([]uint64, plan.Words)
	// Every recursive node, nested ones included, starts with the Empty
	// sentinel in its min/max header; a zero header would mean "holds 0".
	var markEmpty func(off int, p *layout.Plan)
	markEmpty = func(off int, p *layout.Plan) {
		if p.Kind != layout.KindRecursive {
			return
		}
		buf[off], buf[off+1] = recursive.Empty, recursive.Empty
		markEmpty(off+p.SummaryOff, p.Summary())
		for i := 0; i < 1<<uint(p.Hi); i++ {
			markEmpty(off+p.ClusterOff+i*p.ClusterWords, p.Cluster())
		}
	}
	markEmpty(0, plan)
	return &Tree[B]{buf: buf, plan: plan, bits: b}
}

func (t *Tree[B]) view() recursive.View {
	return recursive.NewView(t.buf, t.plan)
}

// Capacity returns 2^B, the number of distinct keys the tree can hold.
func (t *Tree[B]) Capacity() uint64 {
	return uint64(1) << uint(t.bits)
}

func (t *Tree[B]) checkRange(x uint64) {
	if cap := t.Capacity(); x >= cap {
		outOfUniverse(x, cap)
	}
}

// Contains reports whether x is a member of the set.
func (t *Tree[B]) Contains(x uint64) bool {
	t.checkRange(x)
	return t.view().Contains(x)
}

// Insert adds x to the set and reports whether it was newly added.
func (t *Tree[B]) Insert(x uint64) bool {
	t.checkRange(x)
	return t.view().Insert(x)
}

// Remove deletes x from the set and reports whether it was present.
func (t *Tree[B]) Remove(x uint64) bool {
	t.checkRange(x)
	return t.view().Remove(x)
}

// Min returns the smallest member, if the set is non-empty.
func (t *Tree[B]) Min() (uint64, bool) {
	return t.view().Min()
}

// Max returns the largest member, if the set is non-empty.
func (t *Tree[B]) Max() (uint64, bool) {
	return t.view().Max()
}

// Next returns the smallest member >= x, if one exists.
func (t *Tree[B]) Next(x uint64) (uint64, bool) {
	t.checkRange(x)
	return t.view().Next(x)
}

// Prev returns the largest member <= x, if one exists.
func (t *Tree[B]) Prev(x uint64) (uint64, bool) {
	t.checkRange(x)
	return t.view().Prev(x)
}
