// Package arena implements the pinned, arena-like backing store that
// every pinlist.List and pinlist.DoublyList is built on: nodes are
// appended into fixed-size chunks and addressed by Ref rather than by
// Go pointer, so a chunk already handed out is never reallocated and
// the addresses it hands out stay valid until either the whole arena
// is dropped or a reclaimer explicitly repositions a node.
package arena

import (
	"fmt"

	"github.com/facebookgo/stackerr"
)

// Ref addresses a single node slot inside a Storage. It is the
// "pointer" of SPEC_FULL.md §3: a thin, stable handle rather than a
// live Go pointer, so it survives a chunked Storage growing without
// requiring the node it addresses to move.
type Ref int32

// NoRef is the zero-ish sentinel representing "no link".
const NoRef Ref = -1

// Valid reports whether r addresses a slot at all (not whether that
// slot is currently active).
func (r Ref) Valid() bool { return r >= 0 }

// Node is one arena cell: an optional payload plus next/prev link
// slots. A Node is "closed" (spec.md §3) when its payload has been
// taken; closed nodes always have both link slots cleared.
type Node[T any] struct {
	elem T
	has  bool
	next Ref
	prev Ref
}

// ActiveNode builds a freshly active, unlinked node holding elem.
func ActiveNode[T any](elem T) Node[T] {
	return Node[T]{elem: elem, has: true, next: NoRef, prev: NoRef}
}

// Active reports whether the node currently holds a payload.
func (n *Node[T]) Active() bool { return n.has }

// Elem returns the payload. Behaviour is undefined for a closed node;
// callers must check Active first, mirroring data_unchecked in the
// reference implementation.
func (n *Node[T]) Elem() T { return n.elem }

// ElemPtr returns a mutable pointer to the payload for in-place edits.
func (n *Node[T]) ElemPtr() *T { return &n.elem }

// Next returns the next-link slot.
func (n *Node[T]) Next() Ref { return n.next }

// Prev returns the prev-link slot (doubly variant only).
func (n *Node[T]) Prev() Ref { return n.prev }

// SetNext writes the next-link slot.
func (n *Node[T]) SetNext(r Ref) { n.next = r }

// SetPrev writes the prev-link slot.
func (n *Node[T]) SetPrev(r Ref) { n.prev = r }

// Close clears the payload and both link slots, returning the payload
// that was present. This is the close(p) primitive of SPEC_FULL.md §4.2.
func (n *Node[T]) Close() T {
	e := n.elem
	var zero T
	n.elem = zero
	n.has = false
	n.next = NoRef
	n.prev = NoRef
	return e
}

// Storage is the pinned backing store contract of SPEC_FULL.md §4.1.
// Concrete growth policies (FixedCapacity, Doubling, LinearChunks,
// Recursive) each satisfy Storage by deciding differently when and how
// large the next chunk is; all of them guarantee that a Ref returned
// by Append stays valid until Truncate drops it or the whole Storage
// is discarded.
type Storage[T any] interface {
	// Append inserts n at the end of storage order and returns its Ref.
	// Panics with a *CapacityExceededError (via stackerr) if the
	// storage cannot grow any further.
	Append(n Node[T]) Ref

	// Get returns a pointer to the node at r, valid until the next
	// reclaim/Truncate. r must be < Len().
	Get(r Ref) *Node[T]

	// Len returns the number of slots appended so far (active + closed).
	Len() int

	// Truncate drops all slots at or beyond n, freeing any trailing
	// chunks that become entirely unused.
	Truncate(n int)

	// Cap returns the total capacity currently allocated across all
	// chunks; -1 means "unbounded" (no meaningful fixed ceiling).
	Cap() int

	// Chunks returns read-only views of the live portion of every
	// chunk, in storage order. Used by the arbitrary-order cursor and
	// by the optional parallel-iteration collaborator, which can walk
	// each chunk independently since chunks never alias.
	Chunks() [][]Node[T]
}

// CapacityExceededError is raised by a fixed-capacity Storage when
// Append is called at capacity (spec.md §4.1, §7). It is always
// surfaced as a panic: fixed capacity is an explicit user contract.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("arena: capacity %d exceeded", e.Capacity)
}

func panicCapacityExceeded(capacity int) {
	panic(stackerr.Wrap(&CapacityExceededError{Capacity: capacity}))
}
