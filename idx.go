package pinlist

import "github.com/skipor/pinlist/arena"

// NodeIdx is the stable handle of spec.md §3: a (memory-state token,
// pointer, position-hash) triple. In this implementation the
// "pointer" is an arena.Ref (an index, not a Go pointer — see
// SPEC_FULL.md §3), so the owning core's address stands in for the
// "falls within L's arena" half of validation, and pos is kept as the
// position recorded at creation to stay literally faithful to the
// three-field contract, even though for an index-based Ref it can
// never legitimately drift from ref itself.
type NodeIdx[T any] struct {
	owner *core[T]
	state MemoryState
	ref   arena.Ref
	pos   int
}

func newNodeIdx[T any](c *core[T], r arena.Ref) NodeIdx[T] {
	return NodeIdx[T]{owner: c, state: c.state, ref: r, pos: int(r)}
}

// validate implements the predicate of spec.md §3/§7, checked before
// every dereference of a public operation that takes a NodeIdx.
func (idx NodeIdx[T]) validate(c *core[T]) *NodeIdxError {
	if idx.owner != c {
		return ErrOutOfBounds
	}
	if idx.state != c.state {
		return ErrReorganizedCollection
	}
	if !idx.ref.Valid() || int(idx.ref) >= c.storage.Len() || idx.pos != int(idx.ref) {
		return ErrOutOfBounds
	}
	if !c.storage.Get(idx.ref).Active() {
		return ErrRemovedNode
	}
	return nil
}
