package pinlist

import (
	"iter"

	"github.com/skipor/pinlist/arena"
)

// forwardSeq walks from front via next-links, the "Forward iter" of
// spec.md §4.4.
func forwardSeq[T any](c *core[T], front arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := front; cur.Valid(); cur = c.storage.Get(cur).Next() {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
		}
	}
}

// backwardSeq walks from back via prev-links (doubly only).
func backwardSeq[T any](c *core[T], back arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := back; cur.Valid(); cur = c.storage.Get(cur).Prev() {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
		}
	}
}

// ringSeq produces the "Ring iter" of spec.md §4.4: forward traversal
// starting at pivot that wraps from the container's back to its front,
// terminating just before pivot. Needs only front+next, so it is
// identical for the singly and doubly variants.
func ringSeq[T any](c *core[T], front, pivot arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !pivot.Valid() {
			return
		}
		cur := pivot
		for {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
			next := c.storage.Get(cur).Next()
			if !next.Valid() {
				next = front
			}
			if next == pivot {
				return
			}
			cur = next
		}
	}
}

// linksSeq produces the "Links iter" of spec.md §4.4 (doubly only):
// consecutive (curr, next) pairs, length container-length-1.
func linksSeq[T any](c *core[T], front arena.Ref) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		cur := front
		if !cur.Valid() {
			return
		}
		next := c.storage.Get(cur).Next()
		for next.Valid() {
			if !yield(c.storage.Get(cur).Elem(), c.storage.Get(next).Elem()) {
				return
			}
			cur = next
			next = c.storage.Get(cur).Next()
		}
	}
}

// arbitrarySeq walks the arena in storage order skipping closed cells
// (the "Arbitrary-order iter" of spec.md §4.4): faster than link
// chasing since it never dereferences a link, at the cost of an
// unspecified (but deterministic for a given MemoryState) order.
func arbitrarySeq[T any](c *core[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, chunk := range c.storage.Chunks() {
			for i := range chunk {
				if chunk[i].Active() {
					if !yield(chunk[i].Elem()) {
						return
					}
				}
			}
		}
	}
}

// Chunks exposes the arena's live chunks in storage order, for callers
// that want to fan a read-only arbitrary-order walk out themselves
// (e.g. cmd/pinlistdemo's errgroup-based parallel traversal). Each
// chunk is disjoint and safe to read concurrently with the others.
func (l *List[T]) Chunks() [][]arena.Node[T] { return l.c.storage.Chunks() }

// All iterates the list front to back.
func (l *List[T]) All() iter.Seq[T] { return forwardSeq(l.c, l.ends.front) }

// Ring iterates starting at pivot, wrapping from the end of the list
// back to the front, stopping just before pivot. Panics if pivot is
// not currently valid for l; use IsValid first if that is a concern.
func (l *List[T]) Ring(pivot NodeIdx[T]) iter.Seq[T] {
	if err := pivot.validate(l.c); err != nil {
		panic(err)
	}
	return ringSeq(l.c, l.ends.front, pivot.ref)
}

// Arbitrary iterates the arena in storage order, skipping closed
// slots, without following any link.
func (l *List[T]) Arbitrary() iter.Seq[T] { return arbitrarySeq(l.c) }

// Chunks exposes the arena's live chunks in storage order; see
// List.Chunks.
func (l *DoublyList[T]) Chunks() [][]arena.Node[T] { return l.c.storage.Chunks() }

// All iterates the list front to back.
func (l *DoublyList[T]) All() iter.Seq[T] { return forwardSeq(l.c, l.ends.front) }

// Backward iterates the list back to front.
func (l *DoublyList[T]) Backward() iter.Seq[T] { return backwardSeq(l.c, l.ends.back) }

// Ring iterates starting at pivot, wrapping from back to front,
// stopping just before pivot.
func (l *DoublyList[T]) Ring(pivot NodeIdx[T]) iter.Seq[T] {
	if err := pivot.validate(l.c); err != nil {
		panic(err)
	}
	return ringSeq(l.c, l.ends.front, pivot.ref)
}

// Links iterates consecutive (curr, next) element pairs.
func (l *DoublyList[T]) Links() iter.Seq2[T, T] { return linksSeq(l.c, l.ends.front) }

// Arbitrary iterates the arena in storage order, skipping closed
// slots, without following any link.
func (l *DoublyList[T]) Arbitrary() iter.Seq[T] { return arbitrarySeq(l.c) }
