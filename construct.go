package pinlist

import (
	"iter"

	"github.com/skipor/pinlist/arena"
)

// settings accumulates constructor Options before a List/DoublyList is
// built; unexported, mirrors how the teacher threads pool/connection
// settings through constructor parameters (conn.go's ConnMeta) rather
// than a config file (see SPEC_FULL.md §2).
type settings[T any] struct {
	storage arena.Storage[T]
	policy  MemoryPolicy
}

// Option configures a List or DoublyList at construction time. Growth
// policy and memory policy are both runtime values selected this way,
// since Go cannot parametrize a type over "which growth strategy" as a
// zero-cost compile-time parameter the way the original's generics do
// (SPEC_FULL.md §6).
type Option[T any] struct {
	apply func(*settings[T])
}

func newSettings[T any](opts []Option[T]) settings[T] {
	s := settings[T]{storage: arena.NewDoubling[T](), policy: DefaultPolicy()}
	for _, o := range opts {
		o.apply(&s)
	}
	return s
}

// WithFixedCapacity selects a fixed-capacity arena that panics on
// overflow instead of growing (spec.md §4.1, §6).
func WithFixedCapacity[T any](capacity int) Option[T] {
	return Option[T]{apply: func(s *settings[T]) { s.storage = arena.NewFixedCapacity[T](capacity) }}
}

// WithDoublingGrowth selects the exponential-doubling growth arena.
// This is the default if no growth Option is given.
func WithDoublingGrowth[T any]() Option[T] {
	return Option[T]{apply: func(s *settings[T]) { s.storage = arena.NewDoubling[T]() }}
}

// WithLinearGrowth selects the linear-chunk growth arena: every growth
// adds a fixed chunk of 2^exp nodes.
func WithLinearGrowth[T any](exp uint) Option[T] {
	return Option[T]{apply: func(s *settings[T]) { s.storage = arena.NewLinearChunks[T](exp) }}
}

// WithRecursiveGrowth selects the recursive-growth arena (spec.md
// §4.1, arena.NewRecursive).
func WithRecursiveGrowth[T any]() Option[T] {
	return Option[T]{apply: func(s *settings[T]) { s.storage = arena.NewRecursive[T]() }}
}

// WithMemoryPolicy overrides the default memory policy (Threshold(2)).
func WithMemoryPolicy[T any](p MemoryPolicy) Option[T] {
	return Option[T]{apply: func(s *settings[T]) { s.policy = p }}
}

// New builds an empty singly-linked List.
func New[T any](opts ...Option[T]) *List[T] {
	s := newSettings(opts)
	return &List[T]{c: newCore(s.storage, s.policy), ends: emptySinglyEnds()}
}

// FromSeq bulk-constructs a singly-linked List from seq, preserving
// element order (spec.md §6's from_iter), via Extend.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *List[T] {
	l := New(opts...)
	l.Extend(seq)
	return l
}

// NewDoublyFromSeq bulk-constructs a DoublyList from seq, preserving
// element order, via Extend.
func NewDoublyFromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *DoublyList[T] {
	l := NewDoubly(opts...)
	l.Extend(seq)
	return l
}
