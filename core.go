package pinlist

import (
	"github.com/skipor/pinlist/arena"
	"github.com/skipor/pinlist/internal/assert"
)

// core is the shared arena + memory-state + policy block that a List
// and a DoublyList each own privately, and that every Slice/SliceMut
// borrows a pointer to. Its address is the "owner" identity stamped
// into every NodeIdx: since our Refs are plain integers (see
// SPEC_FULL.md §3's note on index-based pinning) an index in bounds
// for one list's arena is trivially in bounds for another's too, so
// NodeIdx must carry something besides the Ref to reject cross-list
// use (spec.md §8 property 10) — the core pointer is that something.
type core[T any] struct {
	storage arena.Storage[T]
	state   MemoryState
	policy  MemoryPolicy
	closed  int // number of closed (reclaimable) slots currently in storage
}

func newCore[T any](storage arena.Storage[T], policy MemoryPolicy) *core[T] {
	return &core[T]{storage: storage, policy: policy}
}

func (c *core[T]) len() int { return c.storage.Len() - c.closed }

// push appends a fresh active node and returns its Ref. Never touches
// MemoryState or the reclaimer (spec.md §4.4 push_front/push_back).
func (c *core[T]) push(v T) arena.Ref {
	return c.storage.Append(arena.ActiveNode(v))
}

// closeNode runs the close(p) primitive and accounts the freed slot.
func (c *core[T]) closeNode(r arena.Ref) T {
	assert.Invariant(c.storage.Get(r).Active(), "closeNode called on an already-closed slot")
	v := c.storage.Get(r).Close()
	c.closed++
	return v
}

// linkDoubly implements link(a,b) of spec.md §4.2: a.next=b, b.prev=a.
func (c *core[T]) linkDoubly(a, b arena.Ref) {
	assert.Invariant(a.Valid() && b.Valid(), "linkDoubly called with an invalid ref")
	c.storage.Get(a).SetNext(b)
	c.storage.Get(b).SetPrev(a)
}

// unlinkDoubly implements unlink(a,b): clears a.next and b.prev.
func (c *core[T]) unlinkDoubly(a, b arena.Ref) {
	if a.Valid() {
		c.storage.Get(a).SetNext(arena.NoRef)
	}
	if b.Valid() {
		c.storage.Get(b).SetPrev(arena.NoRef)
	}
}

// linkNext implements link_next(a,b) of spec.md §4.2 for the singly
// variant: a.next=b only.
func (c *core[T]) linkNext(a, b arena.Ref) {
	c.storage.Get(a).SetNext(b)
}

// utilization reports num_active/num_closed for Observability
// (spec.md §6).
func (c *core[T]) utilization() NodeUtilization {
	total := c.storage.Len()
	return NodeUtilization{NumActive: total - c.closed, NumClosed: c.closed}
}
