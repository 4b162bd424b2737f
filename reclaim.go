package pinlist

import (
	"github.com/skipor/pinlist/arena"
	"github.com/skipor/pinlist/internal/assert"
)

// reclaimDoubly is the two-pointer compaction algorithm of
// spec.md §4.3/§9, grounded on memory/doubly_reclaimer.rs of the
// reference implementation: walk v forward and o backward; whenever
// slot v is closed and slot o is active, swap their storage cells and
// repair the moved node's neighbours (and the list ends, via endsFix)
// to point at v. Returns true iff any node was actually moved.
func reclaimDoubly[T any](c *core[T], endsFix func(oldRef, newRef arena.Ref)) bool {
	n := c.storage.Len()
	v, o := 0, n
	moved := false

	for v < o {
		vref := arena.Ref(v)
		if c.storage.Get(vref).Active() {
			v++
			continue
		}

		var oref arena.Ref
		found := false
		for o > v {
			o--
			oref = arena.Ref(o)
			if c.storage.Get(oref).Active() {
				found = true
				break
			}
		}
		if !found {
			break
		}

		moved = true
		swapDoublyCells(c, vref, oref, endsFix)
		v++
	}

	c.storage.Truncate(v)
	return moved
}

// swapDoublyCells moves the active node physically sitting at
// `occupied` into `vacant`'s slot, fixing up its neighbours' links and
// the list/slice ends to reference the node's new address.
func swapDoublyCells[T any](c *core[T], vacant, occupied arena.Ref, endsFix func(oldRef, newRef arena.Ref)) {
	assert.Invariant(!c.storage.Get(vacant).Active(), "swapDoublyCells: vacant slot is active")
	assert.Invariant(c.storage.Get(occupied).Active(), "swapDoublyCells: occupied slot is closed")
	node := c.storage.Get(occupied)
	prev, next := node.Prev(), node.Next()

	if prev.Valid() {
		c.storage.Get(prev).SetNext(vacant)
	}
	if next.Valid() {
		c.storage.Get(next).SetPrev(vacant)
	}

	*c.storage.Get(vacant) = *node
	node.Close()

	endsFix(occupied, vacant)
}

// reclaimSingly walks the logical list from front (since singly nodes
// have no prev pointer, backward two-pointer compaction is impossible
// — spec.md §9) compacting active nodes into a contiguous prefix while
// preserving logical order, grounded on memory/singly_reclaimer.rs.
func reclaimSingly[T any](c *core[T], front arena.Ref, setFront func(arena.Ref)) bool {
	moved := false
	v := 0
	prev := arena.NoRef
	cur := front

	for cur.Valid() {
		next := c.storage.Get(cur).Next()
		o := int(cur)

		if o > v {
			moved = true
			vref := arena.Ref(v)
			if prev.Valid() {
				c.storage.Get(prev).SetNext(vref)
			} else {
				setFront(vref)
			}
			// The node displaced from v lands in cur's slot: repoint its predecessor.
			if c.storage.Get(vref).Active() {
				for p := cur; p.Valid(); p = c.storage.Get(p).Next() {
					if c.storage.Get(p).Next() == vref {
						c.storage.Get(p).SetNext(cur)
						break
					}
				}
			}
			a, b := c.storage.Get(vref), c.storage.Get(cur)
			*a, *b = *b, *a
			next = a.Next()
			prev = vref
		} else {
			prev = cur
		}

		v++
		cur = next
	}

	c.storage.Truncate(v)
	return moved
}

// maybeReclaim consults the MemoryPolicy after a removal and, if it
// triggers, runs reclaim (the variant-specific callback) and bumps
// MemoryState iff any node actually moved (spec.md §4.3, §9's Open
// Question resolution: bump exactly when, and only when, a node moved).
func maybeReclaim[T any](c *core[T], reclaim func() bool) {
	if !c.policy.shouldReclaim(c.closed, c.storage.Len()) {
		return
	}
	if reclaim() {
		c.state = c.state.next()
	}
	c.closed = 0
}
