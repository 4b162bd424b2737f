package pinlist

import (
	"iter"

	"github.com/skipor/pinlist/arena"
)

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Bound is one endpoint of a slice range (spec.md §4.4's slice(range)).
// Ranges take exactly two Bounds, each Included, Excluded, or Unbounded.
type Bound[T any] struct {
	kind boundKind
	idx  NodeIdx[T]
}

// Unbounded leaves this end of the range open: the list's own front (as
// a start bound) or back (as an end bound).
func Unbounded[T any]() Bound[T] { return Bound[T]{kind: boundUnbounded} }

// Included anchors this end of the range at idx, inclusive.
func Included[T any](idx NodeIdx[T]) Bound[T] { return Bound[T]{kind: boundIncluded, idx: idx} }

// Excluded anchors this end of the range just past idx.
func Excluded[T any](idx NodeIdx[T]) Bound[T] { return Bound[T]{kind: boundExcluded, idx: idx} }

func resolveStart[T any](c *core[T], front arena.Ref, b Bound[T]) (arena.Ref, error) {
	switch b.kind {
	case boundIncluded:
		if err := b.idx.validate(c); err != nil {
			return arena.NoRef, err
		}
		return b.idx.ref, nil
	case boundExcluded:
		if err := b.idx.validate(c); err != nil {
			return arena.NoRef, err
		}
		return c.storage.Get(b.idx.ref).Next(), nil
	default:
		return front, nil
	}
}

func resolveEnd[T any](c *core[T], back arena.Ref, b Bound[T]) (arena.Ref, error) {
	switch b.kind {
	case boundIncluded:
		if err := b.idx.validate(c); err != nil {
			return arena.NoRef, err
		}
		return b.idx.ref, nil
	case boundExcluded:
		if err := b.idx.validate(c); err != nil {
			return arena.NoRef, err
		}
		return c.storage.Get(b.idx.ref).Prev(), nil
	default:
		return back, nil
	}
}

// resolveRange walks forward from start looking for end. Per spec.md
// §4.4: if end is never reached going forward — the start comes after
// the end in logical order — the range directionally extends to the
// list's back instead of wrapping; slices are not cyclic.
func resolveRange[T any](c *core[T], start, end, listBack arena.Ref) doublyEnds {
	if !start.Valid() || !end.Valid() {
		return emptyDoublyEnds()
	}
	for cur := start; ; {
		if cur == end {
			return doublyEnds{front: start, back: end}
		}
		next := c.storage.Get(cur).Next()
		if !next.Valid() {
			return doublyEnds{front: start, back: listBack}
		}
		cur = next
	}
}

// Slice is a read-only bounded view over a DoublyList's arena, carrying
// its own Ends over a subrange (spec.md §4.5). All read operations
// mirror DoublyList's, scoped to [ends.front, ends.back].
type Slice[T any] struct {
	c    *core[T]
	ends doublyEnds
}

// SliceMut is a mutable bounded view. Moves, swaps, reverse, and
// mutable element access are permitted; nothing that could invoke the
// reclaimer is, since that would invalidate the slice itself
// (spec.md §4.5).
type SliceMut[T any] struct {
	Slice[T]
	outer *doublyEnds // owning DoublyList's Ends, kept in sync on boundary mutations
}

func (l *DoublyList[T]) resolveBounds(start, end Bound[T]) (arena.Ref, arena.Ref, error) {
	s, err := resolveStart(l.c, l.ends.front, start)
	if err != nil {
		return arena.NoRef, arena.NoRef, err
	}
	e, err := resolveEnd(l.c, l.ends.back, end)
	if err != nil {
		return arena.NoRef, arena.NoRef, err
	}
	return s, e, nil
}

// Slice resolves [start, end] into a read-only view in O(n).
func (l *DoublyList[T]) Slice(start, end Bound[T]) (*Slice[T], error) {
	s, e, err := l.resolveBounds(start, end)
	if err != nil {
		return nil, err
	}
	return &Slice[T]{c: l.c, ends: resolveRange(l.c, s, e, l.ends.back)}, nil
}

// SliceMut resolves [start, end] into a mutable view in O(n).
func (l *DoublyList[T]) SliceMut(start, end Bound[T]) (*SliceMut[T], error) {
	s, e, err := l.resolveBounds(start, end)
	if err != nil {
		return nil, err
	}
	ends := resolveRange(l.c, s, e, l.ends.back)
	return &SliceMut[T]{Slice: Slice[T]{c: l.c, ends: ends}, outer: &l.ends}, nil
}

// Len counts the active nodes within the slice's bound in O(n); a
// slice has no cached length the way a list does.
func (s *Slice[T]) Len() int {
	if s.ends.isEmpty() {
		return 0
	}
	n := 0
	for cur := s.ends.front; ; cur = s.c.storage.Get(cur).Next() {
		n++
		if cur == s.ends.back {
			return n
		}
	}
}

// IsEmpty reports len(s) == 0.
func (s *Slice[T]) IsEmpty() bool { return s.ends.isEmpty() }

// Front returns a pointer to the slice's front element, or nil if empty.
func (s *Slice[T]) Front() *T {
	if s.ends.isEmpty() {
		return nil
	}
	return s.c.storage.Get(s.ends.front).ElemPtr()
}

// Back returns a pointer to the slice's back element, or nil if empty.
func (s *Slice[T]) Back() *T {
	if s.ends.isEmpty() {
		return nil
	}
	return s.c.storage.Get(s.ends.back).ElemPtr()
}

func (s *Slice[T]) contains(r arena.Ref) bool {
	if s.ends.isEmpty() {
		return false
	}
	for cur := s.ends.front; ; cur = s.c.storage.Get(cur).Next() {
		if cur == r {
			return true
		}
		if cur == s.ends.back {
			return false
		}
	}
}

// Get returns a pointer to idx's element if idx validates and falls
// within the slice's bound, else nil.
func (s *Slice[T]) Get(idx NodeIdx[T]) *T {
	if idx.validate(s.c) != nil || !s.contains(idx.ref) {
		return nil
	}
	return s.c.storage.Get(idx.ref).ElemPtr()
}

// TryGet returns idx's element, or its validation error, or
// ErrOutOfBounds if idx is valid for the list but outside this slice.
func (s *Slice[T]) TryGet(idx NodeIdx[T]) (T, error) {
	var zero T
	if err := idx.validate(s.c); err != nil {
		return zero, err
	}
	if !s.contains(idx.ref) {
		return zero, ErrOutOfBounds
	}
	return s.c.storage.Get(idx.ref).Elem(), nil
}

// IsValid reports whether idx validates against the list and falls
// within this slice's bound.
func (s *Slice[T]) IsValid(idx NodeIdx[T]) bool {
	return idx.validate(s.c) == nil && s.contains(idx.ref)
}

// IdxErr returns the validation error for idx, ErrOutOfBounds if idx is
// outside the slice's bound, or nil.
func (s *Slice[T]) IdxErr(idx NodeIdx[T]) error {
	if err := idx.validate(s.c); err != nil {
		return err
	}
	if !s.contains(idx.ref) {
		return ErrOutOfBounds
	}
	return nil
}

// All iterates the slice front to back.
func (s *Slice[T]) All() iter.Seq[T] { return boundedForwardSeq(s.c, s.ends.front, s.ends.back) }

// Backward iterates the slice back to front.
func (s *Slice[T]) Backward() iter.Seq[T] { return boundedBackwardSeq(s.c, s.ends.front, s.ends.back) }

// Ring iterates starting at pivot, wrapping from the slice's back to
// its front, stopping just before pivot (Scenario D).
func (s *Slice[T]) Ring(pivot NodeIdx[T]) iter.Seq[T] {
	if err := pivot.validate(s.c); err != nil {
		panic(err)
	}
	if !s.contains(pivot.ref) {
		panic(ErrOutOfBounds)
	}
	return boundedRingSeq(s.c, s.ends.front, s.ends.back, pivot.ref)
}

// Links iterates consecutive (curr, next) element pairs within the bound.
func (s *Slice[T]) Links() iter.Seq2[T, T] { return boundedLinksSeq(s.c, s.ends.front, s.ends.back) }

// Equal reports whether s and other hold the same elements in the same
// logical order.
func (s *Slice[T]) Equal(other *Slice[T], eq func(a, b T) bool) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.ends.isEmpty() {
		return true
	}
	a, b := s.ends.front, other.ends.front
	for {
		if !eq(s.c.storage.Get(a).Elem(), other.c.storage.Get(b).Elem()) {
			return false
		}
		if a == s.ends.back {
			return true
		}
		a, b = s.c.storage.Get(a).Next(), other.c.storage.Get(b).Next()
	}
}

func boundedForwardSeq[T any](c *core[T], front, back arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !front.Valid() {
			return
		}
		for cur := front; ; {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
			if cur == back {
				return
			}
			cur = c.storage.Get(cur).Next()
		}
	}
}

func boundedBackwardSeq[T any](c *core[T], front, back arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !back.Valid() {
			return
		}
		for cur := back; ; {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
			if cur == front {
				return
			}
			cur = c.storage.Get(cur).Prev()
		}
	}
}

func boundedRingSeq[T any](c *core[T], front, back, pivot arena.Ref) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !pivot.Valid() {
			return
		}
		cur := pivot
		for {
			if !yield(c.storage.Get(cur).Elem()) {
				return
			}
			var next arena.Ref
			if cur == back {
				next = front
			} else {
				next = c.storage.Get(cur).Next()
			}
			if next == pivot {
				return
			}
			cur = next
		}
	}
}

func boundedLinksSeq[T any](c *core[T], front, back arena.Ref) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		if !front.Valid() || front == back {
			return
		}
		cur := front
		for cur != back {
			next := c.storage.Get(cur).Next()
			if !yield(c.storage.Get(cur).Elem(), c.storage.Get(next).Elem()) {
				return
			}
			cur = next
		}
	}
}

// detachWithOuter unlinks r from wherever it sits within ends, fixing
// the surrounding gap. ends.front/back are checked directly (rather
// than testing link validity, as DoublyList.detach does) because a
// slice boundary need not coincide with a true arena-chain terminal:
// the node "before" a slice's front may be perfectly valid, just
// outside the slice's window. outer, if non-nil, is fixed up in
// tandem when a slice boundary also happens to be a list boundary
// (spec.md §9, "slice ends vs. list ends").
func detachWithOuter[T any](c *core[T], ends *doublyEnds, outer *doublyEnds, r arena.Ref) {
	n := c.storage.Get(r)
	prev, next := n.Prev(), n.Next()
	if ends.front == r {
		ends.front = next
		if outer != nil && outer.front == r {
			outer.front = next
		}
	}
	if ends.back == r {
		ends.back = prev
		if outer != nil && outer.back == r {
			outer.back = prev
		}
	}
	if prev.Valid() {
		c.storage.Get(prev).SetNext(next)
	}
	if next.Valid() {
		c.storage.Get(next).SetPrev(prev)
	}
	n.SetPrev(arena.NoRef)
	n.SetNext(arena.NoRef)
}

// MoveNextTo moves a to sit immediately after b, both within the
// slice's bound. No-op if a == b.
func (sm *SliceMut[T]) MoveNextTo(a, b NodeIdx[T]) error {
	if err := a.validate(sm.c); err != nil {
		return err
	}
	if err := b.validate(sm.c); err != nil {
		return err
	}
	if !sm.contains(a.ref) || !sm.contains(b.ref) {
		return ErrOutOfBounds
	}
	if a.ref == b.ref {
		return nil
	}
	if sm.c.storage.Get(b.ref).Next() == a.ref {
		return nil
	}

	detachWithOuter(sm.c, &sm.ends, sm.outer, a.ref)
	after := sm.c.storage.Get(b.ref).Next()
	sm.c.linkDoubly(b.ref, a.ref)
	if after.Valid() {
		sm.c.linkDoubly(a.ref, after)
	}
	if sm.ends.back == b.ref {
		sm.ends.back = a.ref
		if sm.outer != nil && sm.outer.back == b.ref {
			sm.outer.back = a.ref
		}
	}
	return nil
}

// MovePrevTo moves a to sit immediately before b, both within the
// slice's bound. No-op if a == b.
func (sm *SliceMut[T]) MovePrevTo(a, b NodeIdx[T]) error {
	if err := a.validate(sm.c); err != nil {
		return err
	}
	if err := b.validate(sm.c); err != nil {
		return err
	}
	if !sm.contains(a.ref) || !sm.contains(b.ref) {
		return ErrOutOfBounds
	}
	if a.ref == b.ref {
		return nil
	}
	if sm.c.storage.Get(b.ref).Prev() == a.ref {
		return nil
	}

	detachWithOuter(sm.c, &sm.ends, sm.outer, a.ref)
	before := sm.c.storage.Get(b.ref).Prev()
	sm.c.linkDoubly(a.ref, b.ref)
	if before.Valid() {
		sm.c.linkDoubly(before, a.ref)
	}
	if sm.ends.front == b.ref {
		sm.ends.front = a.ref
		if sm.outer != nil && sm.outer.front == b.ref {
			sm.outer.front = a.ref
		}
	}
	return nil
}

// MoveToFront moves a to become the slice's new front.
func (sm *SliceMut[T]) MoveToFront(a NodeIdx[T]) error {
	if err := a.validate(sm.c); err != nil {
		return err
	}
	if sm.ends.front == a.ref {
		return nil
	}
	return sm.MovePrevTo(a, newNodeIdx(sm.c, sm.ends.front))
}

// MoveToBack moves a to become the slice's new back.
func (sm *SliceMut[T]) MoveToBack(a NodeIdx[T]) error {
	if err := a.validate(sm.c); err != nil {
		return err
	}
	if sm.ends.back == a.ref {
		return nil
	}
	return sm.MoveNextTo(a, newNodeIdx(sm.c, sm.ends.back))
}

// Swap exchanges the logical positions of a and b, both within the
// slice's bound, in O(1). No-op if a == b; delegates to MoveNextTo
// when adjacent.
func (sm *SliceMut[T]) Swap(a, b NodeIdx[T]) error {
	if err := a.validate(sm.c); err != nil {
		return err
	}
	if err := b.validate(sm.c); err != nil {
		return err
	}
	if !sm.contains(a.ref) || !sm.contains(b.ref) {
		return ErrOutOfBounds
	}
	if a.ref == b.ref {
		return nil
	}

	an := sm.c.storage.Get(a.ref)
	if an.Next() == b.ref {
		return sm.MoveNextTo(a, b)
	}
	bn := sm.c.storage.Get(b.ref)
	if bn.Next() == a.ref {
		return sm.MoveNextTo(b, a)
	}

	aPrev, aNext := an.Prev(), an.Next()
	bPrev, bNext := bn.Prev(), bn.Next()

	relinkNext := func(node, target arena.Ref) {
		if node.Valid() {
			sm.c.storage.Get(node).SetNext(target)
		}
	}
	relinkPrev := func(node, target arena.Ref) {
		if node.Valid() {
			sm.c.storage.Get(node).SetPrev(target)
		}
	}
	relinkNext(aPrev, b.ref)
	relinkPrev(aNext, b.ref)
	relinkNext(bPrev, a.ref)
	relinkPrev(bNext, a.ref)

	an.SetPrev(bPrev)
	an.SetNext(bNext)
	bn.SetPrev(aPrev)
	bn.SetNext(aNext)

	swapEnds := func(ends *doublyEnds) {
		if ends == nil {
			return
		}
		if ends.front == a.ref {
			ends.front = b.ref
		} else if ends.front == b.ref {
			ends.front = a.ref
		}
		if ends.back == a.ref {
			ends.back = b.ref
		} else if ends.back == b.ref {
			ends.back = a.ref
		}
	}
	swapEnds(&sm.ends)
	swapEnds(sm.outer)
	return nil
}

// Reverse reverses the slice's bound in O(n): every node's prev/next
// within [front, back] are swapped in place, the two external links
// that cross the boundary (from whatever precedes front, to whatever
// follows back) are rewired to the new front/back, and then the
// slice's own ends (and, if they coincide, the outer list's ends) are
// swapped. This is what keeps the surrounding list structure intact
// when reversing a sub-range (spec.md §4.4).
func (sm *SliceMut[T]) Reverse() {
	if sm.ends.isEmpty() {
		return
	}
	reverseBounded(sm.c, sm.ends.front, sm.ends.back)
	oldFront, oldBack := sm.ends.front, sm.ends.back
	sm.ends.front, sm.ends.back = oldBack, oldFront
	if sm.outer != nil {
		if sm.outer.front == oldFront {
			sm.outer.front = oldBack
		}
		if sm.outer.back == oldBack {
			sm.outer.back = oldFront
		}
	}
}

// reverseBounded reverses [front, back] in place and repairs the two
// links crossing the boundary. For a whole-list reverse the nodes
// before front and after back don't exist, so this reduces to
// reverseRun's plain behavior; for a slice sub-range they do, and must
// be rewired to the new front/back rather than left dangling.
func reverseBounded[T any](c *core[T], front, back arena.Ref) {
	before := c.storage.Get(front).Prev()
	after := c.storage.Get(back).Next()
	reverseRun(c, front, back)
	if before.Valid() {
		c.storage.Get(before).SetNext(back)
		c.storage.Get(back).SetPrev(before)
	} else {
		c.storage.Get(back).SetPrev(arena.NoRef)
	}
	if after.Valid() {
		c.storage.Get(after).SetPrev(front)
		c.storage.Get(front).SetNext(after)
	} else {
		c.storage.Get(front).SetNext(arena.NoRef)
	}
}
