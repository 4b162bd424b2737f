package pinlist

import (
	"iter"

	"github.com/skipor/pinlist/arena"
)

// DoublyList is the owning, doubly-linked container of spec.md §4.4:
// push/pop/insert/remove/move/swap/reverse operations that preserve
// the link invariants of spec.md §3, backed by a pinned arena.Storage.
type DoublyList[T any] struct {
	c    *core[T]
	ends doublyEnds
}

// NewDoubly builds an empty doubly-linked list. Default growth is
// NewDoubling and default policy is DefaultPolicy (Threshold(2)); pass
// Options to override either.
func NewDoubly[T any](opts ...Option[T]) *DoublyList[T] {
	s := newSettings(opts)
	return &DoublyList[T]{c: newCore(s.storage, s.policy), ends: emptyDoublyEnds()}
}

// Len returns the number of active elements.
func (l *DoublyList[T]) Len() int { return l.c.len() }

// IsEmpty reports len(l) == 0.
func (l *DoublyList[T]) IsEmpty() bool { return l.ends.isEmpty() }

// MemoryState returns the arena's current layout token.
func (l *DoublyList[T]) MemoryState() MemoryState { return l.c.state }

// NodeUtilization reports {num_active, num_closed}.
func (l *DoublyList[T]) NodeUtilization() NodeUtilization { return l.c.utilization() }

// IntoLazyReclaim rebinds the policy to Never. O(1): no storage or
// links are touched, MemoryState is unchanged.
func (l *DoublyList[T]) IntoLazyReclaim() { l.c.policy = NeverReclaim() }

// IntoAutoReclaim rebinds the policy to DefaultPolicy (Threshold(2)).
func (l *DoublyList[T]) IntoAutoReclaim() { l.c.policy = DefaultPolicy() }

// IntoAutoReclaimWithThreshold rebinds the policy to Threshold(d).
func (l *DoublyList[T]) IntoAutoReclaimWithThreshold(d uint) { l.c.policy = ThresholdReclaim(d) }

// Front returns a pointer to the front element, or nil if empty.
func (l *DoublyList[T]) Front() *T {
	if l.ends.isEmpty() {
		return nil
	}
	return l.c.storage.Get(l.ends.front).ElemPtr()
}

// Back returns a pointer to the back element, or nil if empty.
func (l *DoublyList[T]) Back() *T {
	if l.ends.isEmpty() {
		return nil
	}
	return l.c.storage.Get(l.ends.back).ElemPtr()
}

// PushFront appends value to the front in O(1) and returns its
// stable index. Never bumps MemoryState.
func (l *DoublyList[T]) PushFront(value T) NodeIdx[T] {
	r := l.c.push(value)
	if l.ends.isEmpty() {
		l.ends.front, l.ends.back = r, r
	} else {
		l.c.linkDoubly(r, l.ends.front)
		l.ends.front = r
	}
	return newNodeIdx(l.c, r)
}

// PushBack appends value to the back in O(1) and returns its stable
// index. Never bumps MemoryState.
func (l *DoublyList[T]) PushBack(value T) NodeIdx[T] {
	r := l.c.push(value)
	if l.ends.isEmpty() {
		l.ends.front, l.ends.back = r, r
	} else {
		l.c.linkDoubly(l.ends.back, r)
		l.ends.back = r
	}
	return newNodeIdx(l.c, r)
}

// SwapFront replaces the front element with newFront and returns the
// prior value, or pushes newFront as the sole element and returns
// (zero, false) if the list was empty (supplemented from
// list/mut_doubly.rs, see SPEC_FULL.md).
func (l *DoublyList[T]) SwapFront(newFront T) (prior T, hadFront bool) {
	if l.ends.isEmpty() {
		l.PushFront(newFront)
		return prior, false
	}
	n := l.c.storage.Get(l.ends.front)
	prior = n.Elem()
	*n.ElemPtr() = newFront
	return prior, true
}

// SwapBack replaces the back element with newBack and returns the
// prior value, or pushes newBack as the sole element and returns
// (zero, false) if the list was empty.
func (l *DoublyList[T]) SwapBack(newBack T) (prior T, hadBack bool) {
	if l.ends.isEmpty() {
		l.PushBack(newBack)
		return prior, false
	}
	n := l.c.storage.Get(l.ends.back)
	prior = n.Elem()
	*n.ElemPtr() = newBack
	return prior, true
}

func (l *DoublyList[T]) endsFixer() func(oldRef, newRef arena.Ref) {
	return func(oldRef, newRef arena.Ref) {
		if l.ends.front == oldRef {
			l.ends.front = newRef
		}
		if l.ends.back == oldRef {
			l.ends.back = newRef
		}
	}
}

func (l *DoublyList[T]) reclaim() bool {
	return reclaimDoubly(l.c, l.endsFixer())
}

// PopFront removes and returns the front element; false if empty.
// O(1) before reclamation; the MemoryPolicy may trigger an O(n)
// reclaim that bumps MemoryState.
func (l *DoublyList[T]) PopFront() (T, bool) {
	var zero T
	if l.ends.isEmpty() {
		return zero, false
	}
	front := l.ends.front
	next := l.c.storage.Get(front).Next()
	if next.Valid() {
		l.c.storage.Get(next).SetPrev(arena.NoRef)
		l.ends.front = next
	} else {
		l.ends = emptyDoublyEnds()
	}
	v := l.c.closeNode(front)
	maybeReclaim(l.c, l.reclaim)
	return v, true
}

// PopBack removes and returns the back element; false if empty.
func (l *DoublyList[T]) PopBack() (T, bool) {
	var zero T
	if l.ends.isEmpty() {
		return zero, false
	}
	back := l.ends.back
	prev := l.c.storage.Get(back).Prev()
	if prev.Valid() {
		l.c.storage.Get(prev).SetNext(arena.NoRef)
		l.ends.back = prev
	} else {
		l.ends = emptyDoublyEnds()
	}
	v := l.c.closeNode(back)
	maybeReclaim(l.c, l.reclaim)
	return v, true
}

// InsertNextTo inserts value immediately after idx's node in O(1).
func (l *DoublyList[T]) InsertNextTo(idx NodeIdx[T], value T) (NodeIdx[T], error) {
	if err := idx.validate(l.c); err != nil {
		return NodeIdx[T]{}, err
	}
	at := idx.ref
	next := l.c.storage.Get(at).Next()
	r := l.c.push(value)
	l.c.linkDoubly(at, r)
	if next.Valid() {
		l.c.linkDoubly(r, next)
	} else {
		l.ends.back = r
	}
	return newNodeIdx(l.c, r), nil
}

// InsertPrevTo inserts value immediately before idx's node in O(1).
func (l *DoublyList[T]) InsertPrevTo(idx NodeIdx[T], value T) (NodeIdx[T], error) {
	if err := idx.validate(l.c); err != nil {
		return NodeIdx[T]{}, err
	}
	at := idx.ref
	prev := l.c.storage.Get(at).Prev()
	r := l.c.push(value)
	l.c.linkDoubly(r, at)
	if prev.Valid() {
		l.c.linkDoubly(prev, r)
	} else {
		l.ends.front = r
	}
	return newNodeIdx(l.c, r), nil
}

// Remove removes and returns the value at idx in O(1), then consults
// the MemoryPolicy.
func (l *DoublyList[T]) Remove(idx NodeIdx[T]) (T, error) {
	var zero T
	if err := idx.validate(l.c); err != nil {
		return zero, err
	}
	r := idx.ref
	n := l.c.storage.Get(r)
	prev, next := n.Prev(), n.Next()

	if prev.Valid() {
		l.c.storage.Get(prev).SetNext(next)
	} else {
		l.ends.front = next
	}
	if next.Valid() {
		l.c.storage.Get(next).SetPrev(prev)
	} else {
		l.ends.back = prev
	}

	v := l.c.closeNode(r)
	maybeReclaim(l.c, l.reclaim)
	return v, nil
}

// walkToPos resolves a 0-based logical position to its Ref, choosing
// the shorter direction from front or back.
func (l *DoublyList[T]) walkToPos(pos int) (arena.Ref, bool) {
	n := l.Len()
	if pos < 0 || pos >= n {
		return arena.NoRef, false
	}
	if pos <= n-1-pos {
		r := l.ends.front
		for i := 0; i < pos; i++ {
			r = l.c.storage.Get(r).Next()
		}
		return r, true
	}
	r := l.ends.back
	for i := 0; i < n-1-pos; i++ {
		r = l.c.storage.Get(r).Prev()
	}
	return r, true
}

// InsertAt inserts value at logical position pos in O(n): walks to
// pos then performs the O(1) local splice. pos == Len() appends.
func (l *DoublyList[T]) InsertAt(pos int, value T) (NodeIdx[T], bool) {
	n := l.Len()
	switch {
	case pos == n:
		return l.PushBack(value), true
	case pos == 0:
		return l.PushFront(value), true
	}
	at, ok := l.walkToPos(pos)
	if !ok {
		return NodeIdx[T]{}, false
	}
	idx, _ := l.InsertPrevTo(newNodeIdx(l.c, at), value)
	return idx, true
}

// RemoveAt removes and returns the value at logical position pos in
// O(n); false if pos is out of range.
func (l *DoublyList[T]) RemoveAt(pos int) (T, bool) {
	var zero T
	at, ok := l.walkToPos(pos)
	if !ok {
		return zero, false
	}
	v, err := l.Remove(newNodeIdx(l.c, at))
	if err != nil {
		return zero, false
	}
	return v, true
}

// detach unlinks r from wherever it currently sits, fixing the
// surrounding gap and the ends that referenced it. Used by both
// move and swap.
func (l *DoublyList[T]) detach(r arena.Ref) {
	n := l.c.storage.Get(r)
	prev, next := n.Prev(), n.Next()
	if prev.Valid() {
		l.c.storage.Get(prev).SetNext(next)
	} else {
		l.ends.front = next
	}
	if next.Valid() {
		l.c.storage.Get(next).SetPrev(prev)
	} else {
		l.ends.back = prev
	}
	n.SetPrev(arena.NoRef)
	n.SetNext(arena.NoRef)
}

// MoveNextTo moves a to sit immediately after b. No-op if a == b.
func (l *DoublyList[T]) MoveNextTo(a, b NodeIdx[T]) error {
	if err := a.validate(l.c); err != nil {
		return err
	}
	if err := b.validate(l.c); err != nil {
		return err
	}
	if a.ref == b.ref {
		return nil
	}
	if l.c.storage.Get(b.ref).Next() == a.ref {
		return nil // already adjacent on the target side
	}

	l.detach(a.ref)
	after := l.c.storage.Get(b.ref).Next()
	l.c.linkDoubly(b.ref, a.ref)
	if after.Valid() {
		l.c.linkDoubly(a.ref, after)
	} else {
		l.ends.back = a.ref
	}
	return nil
}

// MovePrevTo moves a to sit immediately before b. No-op if a == b.
func (l *DoublyList[T]) MovePrevTo(a, b NodeIdx[T]) error {
	if err := a.validate(l.c); err != nil {
		return err
	}
	if err := b.validate(l.c); err != nil {
		return err
	}
	if a.ref == b.ref {
		return nil
	}
	if l.c.storage.Get(b.ref).Prev() == a.ref {
		return nil
	}

	l.detach(a.ref)
	before := l.c.storage.Get(b.ref).Prev()
	l.c.linkDoubly(a.ref, b.ref)
	if before.Valid() {
		l.c.linkDoubly(before, a.ref)
	} else {
		l.ends.front = a.ref
	}
	return nil
}

// MoveToFront moves a to become the new front. No-op if already front.
func (l *DoublyList[T]) MoveToFront(a NodeIdx[T]) error {
	if err := a.validate(l.c); err != nil {
		return err
	}
	if l.ends.front == a.ref {
		return nil
	}
	return l.MovePrevTo(a, newNodeIdx(l.c, l.ends.front))
}

// MoveToBack moves a to become the new back. No-op if already back.
func (l *DoublyList[T]) MoveToBack(a NodeIdx[T]) error {
	if err := a.validate(l.c); err != nil {
		return err
	}
	if l.ends.back == a.ref {
		return nil
	}
	return l.MoveNextTo(a, newNodeIdx(l.c, l.ends.back))
}

// Swap exchanges the logical positions of a and b in O(1). A no-op if
// a == b; delegates to MoveNextTo when a and b are adjacent.
func (l *DoublyList[T]) Swap(a, b NodeIdx[T]) error {
	if err := a.validate(l.c); err != nil {
		return err
	}
	if err := b.validate(l.c); err != nil {
		return err
	}
	if a.ref == b.ref {
		return nil
	}

	an := l.c.storage.Get(a.ref)
	if an.Next() == b.ref {
		return l.MoveNextTo(a, b)
	}
	bn := l.c.storage.Get(b.ref)
	if bn.Next() == a.ref {
		return l.MoveNextTo(b, a)
	}

	aPrev, aNext := an.Prev(), an.Next()
	bPrev, bNext := bn.Prev(), bn.Next()

	relink := func(endpoint, newNeighbor arena.Ref, setNext bool) {
		if !endpoint.Valid() {
			if setNext {
				l.ends.front = newNeighbor
			} else {
				l.ends.back = newNeighbor
			}
			return
		}
		if setNext {
			l.c.storage.Get(endpoint).SetNext(newNeighbor)
		} else {
			l.c.storage.Get(endpoint).SetPrev(newNeighbor)
		}
	}

	relink(aPrev, b.ref, true)
	relink(aNext, b.ref, false)
	relink(bPrev, a.ref, true)
	relink(bNext, a.ref, false)

	an.SetPrev(bPrev)
	an.SetNext(bNext)
	bn.SetPrev(aPrev)
	bn.SetNext(aNext)
	return nil
}

// Reverse reverses the list in O(n): every node's prev/next are
// swapped in place, then the ends are swapped.
func (l *DoublyList[T]) Reverse() {
	reverseRun(l.c, l.ends.front, l.ends.back)
	l.ends.front, l.ends.back = l.ends.back, l.ends.front
}

// reverseRun walks from..to inclusive via next, swapping each node's
// prev/next slots. Shared by DoublyList.Reverse and SliceMut.Reverse.
func reverseRun[T any](c *core[T], from, to arena.Ref) {
	if !from.Valid() {
		return
	}
	cur := from
	for {
		n := c.storage.Get(cur)
		next := n.Next()
		n.SetNext(n.Prev())
		n.SetPrev(next)
		if cur == to {
			break
		}
		cur = next
	}
}

// AppendFront splices other onto the front of l: other's elements are
// copied into l's own arena (they live behind a different
// arena.Storage entirely, so their nodes cannot simply be relinked in
// place the way a same-arena move can) and other is left empty. This
// is O(n) rather than the O(1) the reference design achieves by
// physically merging two arenas' chunk lists — our arena.Storage
// interface has no such splice primitive, see DESIGN.md. Regardless of
// cost, indices issued against other are guaranteed invalidated: they
// carry other's core as their owner, which can never equal l's (the
// cross-list rejection of spec.md §8 property 10), and other itself is
// cleared and its own MemoryState bumped so stale indices fail even
// against it.
func (l *DoublyList[T]) AppendFront(other *DoublyList[T]) {
	if other.IsEmpty() {
		return
	}
	elems := collectDoubly(other)
	other.Clear()
	for i := len(elems) - 1; i >= 0; i-- {
		l.PushFront(elems[i])
	}
}

// AppendBack splices other onto the back of l. See AppendFront.
func (l *DoublyList[T]) AppendBack(other *DoublyList[T]) {
	if other.IsEmpty() {
		return
	}
	elems := collectDoubly(other)
	other.Clear()
	for _, e := range elems {
		l.PushBack(e)
	}
}

// collectDoubly snapshots other's elements, front to back, before
// other is cleared.
func collectDoubly[T any](other *DoublyList[T]) []T {
	elems := make([]T, 0, other.Len())
	for cur := other.ends.front; cur.Valid(); cur = other.c.storage.Get(cur).Next() {
		elems = append(elems, other.c.storage.Get(cur).Elem())
	}
	return elems
}

// Clear empties the list and advances MemoryState.
func (l *DoublyList[T]) Clear() {
	l.c.storage.Truncate(0)
	l.c.closed = 0
	l.ends = emptyDoublyEnds()
	l.c.state = l.c.state.next()
}

// Get returns a pointer to idx's element, or nil if idx is invalid.
func (l *DoublyList[T]) Get(idx NodeIdx[T]) *T {
	if idx.validate(l.c) != nil {
		return nil
	}
	return l.c.storage.Get(idx.ref).ElemPtr()
}

// TryGet returns idx's element, or the validation error.
func (l *DoublyList[T]) TryGet(idx NodeIdx[T]) (T, error) {
	var zero T
	if err := idx.validate(l.c); err != nil {
		return zero, err
	}
	return l.c.storage.Get(idx.ref).Elem(), nil
}

// IsValid reports whether idx currently validates against l.
func (l *DoublyList[T]) IsValid(idx NodeIdx[T]) bool { return idx.validate(l.c) == nil }

// IdxErr returns the validation error for idx, or nil if valid.
func (l *DoublyList[T]) IdxErr(idx NodeIdx[T]) error {
	if err := idx.validate(l.c); err != nil {
		return err
	}
	return nil
}

// ReclaimClosedNodes forces a reclaim regardless of MemoryPolicy,
// for use under NeverReclaim. Returns whether any node moved.
func (l *DoublyList[T]) ReclaimClosedNodes() bool {
	moved := l.reclaim()
	if moved {
		l.c.state = l.c.state.next()
	}
	l.c.closed = 0
	return moved
}

// Extend bulk-appends seq's elements to the back in O(1) each,
// preserving order (supplemented from src/extend.rs, see
// SPEC_FULL.md).
func (l *DoublyList[T]) Extend(seq iter.Seq[T]) {
	seq(func(v T) bool {
		l.PushBack(v)
		return true
	})
}

// Equal reports whether l and other contain the same elements in the
// same logical order, independent of arena layout (supplemented from
// src/eq.rs, see SPEC_FULL.md).
func (l *DoublyList[T]) Equal(other *DoublyList[T], eq func(a, b T) bool) bool {
	if l.Len() != other.Len() {
		return false
	}
	for a, b := l.ends.front, other.ends.front; a.Valid(); a, b = l.c.storage.Get(a).Next(), other.c.storage.Get(b).Next() {
		if !eq(l.c.storage.Get(a).Elem(), other.c.storage.Get(b).Elem()) {
			return false
		}
	}
	return true
}
