package pinlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDoubly10(t *testing.T) (*DoublyList[int], []NodeIdx[int]) {
	t.Helper()
	l := NewDoubly[int]()
	idx := make([]NodeIdx[int], 10)
	for i := 0; i < 10; i++ {
		idx[i] = l.PushBack(i)
	}
	return l, idx
}

func TestSliceIncludedIncludedRange(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[2]), Included(idx[5]))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5}, collect(s.All()))
	require.Equal(t, 4, s.Len())
}

func TestSliceExcludedBounds(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Excluded(idx[2]), Excluded(idx[6]))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, collect(s.All()))
}

func TestSliceUnboundedStartAndEnd(t *testing.T) {
	l, idx := buildDoubly10(t)

	s, err := l.Slice(Unbounded[int](), Included(idx[3]))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, collect(s.All()))

	s, err = l.Slice(Included(idx[7]), Unbounded[int]())
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, collect(s.All()))

	s, err = l.Slice(Unbounded[int](), Unbounded[int]())
	require.NoError(t, err)
	require.Equal(t, 10, s.Len())
}

// When start comes after end in logical order, the range directionally
// extends to the list's back rather than wrapping (spec.md §4.4).
func TestSliceDirectionalExtensionWhenEndNeverReached(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[7]), Included(idx[2]))
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, collect(s.All()))
}

func TestSliceFrontBackAndEmpty(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[4]), Included(idx[4]))
	require.NoError(t, err)
	require.False(t, s.IsEmpty())
	require.Equal(t, 4, *s.Front())
	require.Equal(t, 4, *s.Back())
	require.Equal(t, 1, s.Len())
}

func TestSliceGetTryGetIsValidIdxErr(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[2]), Included(idx[5]))
	require.NoError(t, err)

	require.NotNil(t, s.Get(idx[3]))
	require.Equal(t, 3, *s.Get(idx[3]))
	require.Nil(t, s.Get(idx[8]))

	v, err := s.TryGet(idx[3])
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = s.TryGet(idx[8])
	require.ErrorIs(t, err, ErrOutOfBounds)

	require.True(t, s.IsValid(idx[2]))
	require.False(t, s.IsValid(idx[9]))
	require.NoError(t, s.IdxErr(idx[5]))
	require.ErrorIs(t, s.IdxErr(idx[0]), ErrOutOfBounds)
}

func TestSliceBackwardAndLinks(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[3]), Included(idx[6]))
	require.NoError(t, err)

	require.Equal(t, []int{6, 5, 4, 3}, collect(s.Backward()))

	var curs, nexts []int
	for c, n := range s.Links() {
		curs = append(curs, c)
		nexts = append(nexts, n)
	}
	require.Equal(t, []int{3, 4, 5}, curs)
	require.Equal(t, []int{4, 5, 6}, nexts)
}

func TestSliceRingFromEachPivot(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[3]), Included(idx[7]))
	require.NoError(t, err)

	require.Equal(t, []int{3, 4, 5, 6, 7}, collect(s.Ring(idx[3])))
	require.Equal(t, []int{7, 3, 4, 5, 6}, collect(s.Ring(idx[7])))
	require.Equal(t, []int{5, 6, 7, 3, 4}, collect(s.Ring(idx[5])))
}

func TestSliceRingOutOfBoundPivotPanics(t *testing.T) {
	l, idx := buildDoubly10(t)
	s, err := l.Slice(Included(idx[3]), Included(idx[7]))
	require.NoError(t, err)

	require.PanicsWithValue(t, ErrOutOfBounds, func() {
		s.Ring(idx[8])
	})
}

func TestSliceEqual(t *testing.T) {
	l, idx := buildDoubly10(t)
	a, err := l.Slice(Included(idx[2]), Included(idx[5]))
	require.NoError(t, err)
	b, err := l.Slice(Included(idx[2]), Included(idx[5]))
	require.NoError(t, err)
	require.True(t, a.Equal(b, func(x, y int) bool { return x == y }))

	c, err := l.Slice(Included(idx[2]), Included(idx[4]))
	require.NoError(t, err)
	require.False(t, a.Equal(c, func(x, y int) bool { return x == y }))
}

func TestSliceMutMoveNextToWithinBound(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Included(idx[2]), Included(idx[6]))
	require.NoError(t, err)

	require.NoError(t, sm.MoveNextTo(idx[5], idx[2]))
	require.Equal(t, []int{2, 5, 3, 4, 6}, collect(sm.All()))
	// the slice's motion must also be reflected through the owning list.
	require.Equal(t, []int{0, 1, 2, 5, 3, 4, 6, 7, 8, 9}, collect(l.All()))
}

func TestSliceMutMoveOutOfBoundIsError(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Included(idx[2]), Included(idx[6]))
	require.NoError(t, err)

	require.ErrorIs(t, sm.MoveNextTo(idx[8], idx[2]), ErrOutOfBounds)
	require.ErrorIs(t, sm.MoveNextTo(idx[2], idx[9]), ErrOutOfBounds)
}

func TestSliceMutMoveToFrontAndBack(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Included(idx[2]), Included(idx[6]))
	require.NoError(t, err)

	require.NoError(t, sm.MoveToFront(idx[5]))
	require.Equal(t, []int{5, 2, 3, 4, 6}, collect(sm.All()))

	require.NoError(t, sm.MoveToBack(idx[2]))
	require.Equal(t, []int{5, 3, 4, 6, 2}, collect(sm.All()))
}

func TestSliceMutSwapInvolutive(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Included(idx[2]), Included(idx[6]))
	require.NoError(t, err)

	before := collect(sm.All())
	require.NoError(t, sm.Swap(idx[3], idx[5]))
	require.NoError(t, sm.Swap(idx[3], idx[5]))
	require.Equal(t, before, collect(sm.All()))
}

// Reversing a sub-range must keep the links crossing the slice boundary
// consistent with the rest of the list (spec.md §4.4, §9).
func TestSliceMutReverseKeepsOuterListLinked(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Included(idx[3]), Included(idx[6]))
	require.NoError(t, err)

	sm.Reverse()
	require.Equal(t, []int{6, 5, 4, 3}, collect(sm.All()))
	require.Equal(t, []int{0, 1, 2, 6, 5, 4, 3, 7, 8, 9}, collect(l.All()))
	require.Equal(t, []int{9, 8, 7, 3, 4, 5, 6, 2, 1, 0}, collect(l.Backward()))
}

// Reversing a slice that happens to span the whole list reduces to a
// plain whole-list reverse: no external neighbors exist to rewire.
func TestSliceMutReverseWholeList(t *testing.T) {
	l, idx := buildDoubly10(t)
	sm, err := l.SliceMut(Unbounded[int](), Unbounded[int]())
	require.NoError(t, err)
	_ = idx

	sm.Reverse()
	require.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, collect(l.All()))
}
