package pinlist

import (
	"iter"

	"github.com/skipor/pinlist/arena"
)

// List is the owning, singly-linked container of spec.md §4.4. Its
// Ends value is a single front pointer (spec.md §3): a singly node has
// no prev link, so every operation that would need a predecessor
// (removal away from the front, the back end itself) walks from front
// instead of following a back-pointer that doesn't exist — see
// DESIGN.md for the scope decisions this forces relative to
// DoublyList.
type List[T any] struct {
	c    *core[T]
	ends singlyEnds
}

// Len returns the number of active elements.
func (l *List[T]) Len() int { return l.c.len() }

// IsEmpty reports len(l) == 0.
func (l *List[T]) IsEmpty() bool { return l.ends.isEmpty() }

// MemoryState returns the arena's current layout token.
func (l *List[T]) MemoryState() MemoryState { return l.c.state }

// NodeUtilization reports {num_active, num_closed}.
func (l *List[T]) NodeUtilization() NodeUtilization { return l.c.utilization() }

// IntoLazyReclaim rebinds the policy to Never.
func (l *List[T]) IntoLazyReclaim() { l.c.policy = NeverReclaim() }

// IntoAutoReclaim rebinds the policy to DefaultPolicy.
func (l *List[T]) IntoAutoReclaim() { l.c.policy = DefaultPolicy() }

// IntoAutoReclaimWithThreshold rebinds the policy to Threshold(d).
func (l *List[T]) IntoAutoReclaimWithThreshold(d uint) { l.c.policy = ThresholdReclaim(d) }

// Front returns a pointer to the front element, or nil if empty.
func (l *List[T]) Front() *T {
	if l.ends.isEmpty() {
		return nil
	}
	return l.c.storage.Get(l.ends.front).ElemPtr()
}

func (l *List[T]) reclaim() bool {
	return reclaimSingly(l.c, l.ends.front, func(r arena.Ref) { l.ends.front = r })
}

// SwapFront replaces the front element with newFront and returns the
// prior value, or pushes newFront as the sole element and returns
// (zero, false) if the list was empty (supplemented from
// list/mut_singly.rs's swap_front, see SPEC_FULL.md).
func (l *List[T]) SwapFront(newFront T) (prior T, hadFront bool) {
	if l.ends.isEmpty() {
		l.PushFront(newFront)
		return prior, false
	}
	n := l.c.storage.Get(l.ends.front)
	prior = n.Elem()
	*n.ElemPtr() = newFront
	return prior, true
}

// PushFront appends value to the front in O(1) and returns its
// stable index.
func (l *List[T]) PushFront(value T) NodeIdx[T] {
	r := l.c.push(value)
	if l.ends.isEmpty() {
		l.ends.front = r
	} else {
		l.c.linkNext(r, l.ends.front)
		l.ends.front = r
	}
	return newNodeIdx(l.c, r)
}

// PopFront removes and returns the front element; false if empty.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.ends.isEmpty() {
		return zero, false
	}
	front := l.ends.front
	l.ends.front = l.c.storage.Get(front).Next()
	v := l.c.closeNode(front)
	maybeReclaim(l.c, l.reclaim)
	return v, true
}

// InsertNextTo inserts value immediately after idx's node in O(1).
func (l *List[T]) InsertNextTo(idx NodeIdx[T], value T) (NodeIdx[T], error) {
	if err := idx.validate(l.c); err != nil {
		return NodeIdx[T]{}, err
	}
	at := idx.ref
	next := l.c.storage.Get(at).Next()
	r := l.c.push(value)
	l.c.linkNext(at, r)
	l.c.linkNext(r, next)
	return newNodeIdx(l.c, r), nil
}

// predecessorOf walks from front and returns the ref immediately
// before r, or arena.NoRef if r is the front (or not found).
func (l *List[T]) predecessorOf(r arena.Ref) arena.Ref {
	if l.ends.front == r {
		return arena.NoRef
	}
	for cur := l.ends.front; cur.Valid(); cur = l.c.storage.Get(cur).Next() {
		if l.c.storage.Get(cur).Next() == r {
			return cur
		}
	}
	return arena.NoRef
}

// Remove removes and returns the value at idx. O(1) when idx is the
// front; otherwise O(n), since a singly node carries no prev pointer
// and finding its predecessor requires a front-to-back walk (see
// DESIGN.md — this is the one operation where the singly variant
// cannot meet the blanket O(1) claim spec.md states for the generic
// "remove(idx)").
func (l *List[T]) Remove(idx NodeIdx[T]) (T, error) {
	var zero T
	if err := idx.validate(l.c); err != nil {
		return zero, err
	}
	r := idx.ref
	next := l.c.storage.Get(r).Next()

	if l.ends.front == r {
		l.ends.front = next
	} else {
		prev := l.predecessorOf(r)
		l.c.linkNext(prev, next)
	}

	v := l.c.closeNode(r)
	maybeReclaim(l.c, l.reclaim)
	return v, nil
}

// InsertAt inserts value at logical position pos in O(n).
// pos == Len() appends at the end.
func (l *List[T]) InsertAt(pos int, value T) (NodeIdx[T], bool) {
	n := l.Len()
	if pos < 0 || pos > n {
		return NodeIdx[T]{}, false
	}
	if pos == 0 {
		return l.PushFront(value), true
	}
	r := l.ends.front
	for i := 0; i < pos-1; i++ {
		r = l.c.storage.Get(r).Next()
	}
	idx, _ := l.InsertNextTo(newNodeIdx(l.c, r), value)
	return idx, true
}

// RemoveAt removes and returns the value at logical position pos in
// O(n); false if pos is out of range.
func (l *List[T]) RemoveAt(pos int) (T, bool) {
	var zero T
	n := l.Len()
	if pos < 0 || pos >= n {
		return zero, false
	}
	r := l.ends.front
	for i := 0; i < pos; i++ {
		r = l.c.storage.Get(r).Next()
	}
	v, err := l.Remove(newNodeIdx(l.c, r))
	if err != nil {
		return zero, false
	}
	return v, true
}

// Clear empties the list and advances MemoryState.
func (l *List[T]) Clear() {
	l.c.storage.Truncate(0)
	l.c.closed = 0
	l.ends = emptySinglyEnds()
	l.c.state = l.c.state.next()
}

// Get returns a pointer to idx's element, or nil if idx is invalid.
func (l *List[T]) Get(idx NodeIdx[T]) *T {
	if idx.validate(l.c) != nil {
		return nil
	}
	return l.c.storage.Get(idx.ref).ElemPtr()
}

// TryGet returns idx's element, or the validation error.
func (l *List[T]) TryGet(idx NodeIdx[T]) (T, error) {
	var zero T
	if err := idx.validate(l.c); err != nil {
		return zero, err
	}
	return l.c.storage.Get(idx.ref).Elem(), nil
}

// IsValid reports whether idx currently validates against l.
func (l *List[T]) IsValid(idx NodeIdx[T]) bool { return idx.validate(l.c) == nil }

// IdxErr returns the validation error for idx, or nil if valid.
func (l *List[T]) IdxErr(idx NodeIdx[T]) error {
	if err := idx.validate(l.c); err != nil {
		return err
	}
	return nil
}

// ReclaimClosedNodes forces a reclaim regardless of MemoryPolicy.
// Returns whether any node moved.
func (l *List[T]) ReclaimClosedNodes() bool {
	moved := l.reclaim()
	if moved {
		l.c.state = l.c.state.next()
	}
	l.c.closed = 0
	return moved
}

// Extend bulk-appends seq's elements to the back, preserving order
// (supplemented from src/extend.rs, see SPEC_FULL.md). Finding the
// current tail costs O(n) once; every element after that is inserted
// in O(1), same as a single InsertNextTo at the tail.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	tail := l.ends.front
	for tail.Valid() {
		next := l.c.storage.Get(tail).Next()
		if !next.Valid() {
			break
		}
		tail = next
	}
	seq(func(v T) bool {
		if !tail.Valid() {
			tail = l.PushFront(v).ref
			return true
		}
		idx, _ := l.InsertNextTo(newNodeIdx(l.c, tail), v)
		tail = idx.ref
		return true
	})
}

// Equal reports whether l and other contain the same elements in the
// same logical order, independent of arena layout.
func (l *List[T]) Equal(other *List[T], eq func(a, b T) bool) bool {
	if l.Len() != other.Len() {
		return false
	}
	a, b := l.ends.front, other.ends.front
	for a.Valid() {
		if !eq(l.c.storage.Get(a).Elem(), other.c.storage.Get(b).Elem()) {
			return false
		}
		a, b = l.c.storage.Get(a).Next(), other.c.storage.Get(b).Next()
	}
	return true
}
