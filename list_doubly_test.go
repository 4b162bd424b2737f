package pinlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDoublyPushPopInverse(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(1)
	v, ok := l.PopBack()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, l.IsEmpty())

	l.PushFront(2)
	v, ok = l.PopFront()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.True(t, l.IsEmpty())
}

func TestDoublyPopEmptyReturnsFalse(t *testing.T) {
	l := NewDoubly[int]()
	_, ok := l.PopFront()
	require.False(t, ok)
	_, ok = l.PopBack()
	require.False(t, ok)
}

func TestDoublyLenMatchesActiveAndReachable(t *testing.T) {
	l := NewDoubly[int]()
	for i := 0; i < 20; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 5; i++ {
		l.PopFront()
	}
	require.Equal(t, 15, l.Len())
	require.Equal(t, l.Len(), len(collect(l.All())))
	require.Equal(t, l.NodeUtilization().NumActive, l.Len())
}

func TestDoublyLinkInvariantHoldsAfterMutation(t *testing.T) {
	l := NewDoubly[int]()
	idx := make([]NodeIdx[int], 6)
	for i := 0; i < 6; i++ {
		idx[i] = l.PushBack(i)
	}
	require.NoError(t, l.MoveNextTo(idx[0], idx[3]))
	require.NoError(t, l.Swap(idx[5], idx[2]))

	assertDoublyLinksConsistent(t, l)
}

func assertDoublyLinksConsistent[T any](t *testing.T, l *DoublyList[T]) {
	t.Helper()
	fwd := collect(l.All())
	bwd := collect(l.Backward())
	reversedBwd := make([]T, len(bwd))
	for i, v := range bwd {
		reversedBwd[len(bwd)-1-i] = v
	}
	require.Equal(t, fwd, reversedBwd)
}

func TestDoublyEndsNoneIffEmpty(t *testing.T) {
	l := NewDoubly[int]()
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())

	l.PushBack(1)
	require.NotNil(t, l.Front())
	require.NotNil(t, l.Back())

	l.PopBack()
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestDoublyInsertNextToAndPrevTo(t *testing.T) {
	l := NewDoubly[int]()
	a := l.PushBack(1)
	c := l.PushBack(3)

	b, err := l.InsertNextTo(a, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, collect(l.All()))

	d, err := l.InsertPrevTo(c, 25)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 25, 3}, collect(l.All()))

	require.True(t, l.IsValid(b))
	require.True(t, l.IsValid(d))
}

func TestDoublyInsertAtAndRemoveAt(t *testing.T) {
	l := NewDoubly[int]()
	for _, v := range []int{0, 1, 2, 3, 4} {
		l.PushBack(v)
	}

	_, ok := l.InsertAt(2, 99)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 99, 2, 3, 4}, collect(l.All()))

	v, ok := l.RemoveAt(2)
	require.True(t, ok)
	require.Equal(t, 99, v)
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(l.All()))

	_, ok = l.RemoveAt(100)
	require.False(t, ok)
}

func TestDoublyMoveToFrontAndBack(t *testing.T) {
	l := NewDoubly[int]()
	idx := make([]NodeIdx[int], 4)
	for i := 0; i < 4; i++ {
		idx[i] = l.PushBack(i)
	}

	require.NoError(t, l.MoveToFront(idx[2]))
	require.Equal(t, []int{2, 0, 1, 3}, collect(l.All()))

	require.NoError(t, l.MoveToBack(idx[0]))
	require.Equal(t, []int{2, 1, 3, 0}, collect(l.All()))
}

func TestDoublySwapInvolutive(t *testing.T) {
	l := NewDoubly[int]()
	idx := make([]NodeIdx[int], 5)
	for i := 0; i < 5; i++ {
		idx[i] = l.PushBack(i)
	}
	before := collect(l.All())

	require.NoError(t, l.Swap(idx[1], idx[3]))
	require.NoError(t, l.Swap(idx[1], idx[3]))
	require.Equal(t, before, collect(l.All()))
}

func TestDoublyExtend(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(0)
	l.Extend(func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	})
	require.Equal(t, []int{0, 1, 2, 3}, collect(l.All()))
}

func TestDoublyFromSeqUsesExtend(t *testing.T) {
	l := NewDoublyFromSeq[int](func(yield func(int) bool) {
		for _, v := range []int{1, 2, 3} {
			if !yield(v) {
				return
			}
		}
	})
	require.Equal(t, []int{1, 2, 3}, collect(l.All()))
}

func TestDoublyAppendFrontBack(t *testing.T) {
	a := NewDoubly[int]()
	a.PushBack(1)
	a.PushBack(2)
	b := NewDoubly[int]()
	b.PushBack(3)
	b.PushBack(4)

	a.AppendBack(b)
	if diff := cmp.Diff([]int{1, 2, 3, 4}, collect(a.All())); diff != "" {
		t.Fatalf("AppendBack result mismatch (-want +got):\n%s", diff)
	}
	require.True(t, b.IsEmpty())

	c := NewDoubly[int]()
	c.PushBack(0)
	c.AppendFront(a)
	require.Equal(t, []int{1, 2, 3, 4, 0}, collect(c.All()))
}

func TestDoublyClearAdvancesMemoryState(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(1)
	l.PushBack(2)
	before := l.MemoryState()
	l.Clear()
	require.True(t, l.IsEmpty())
	require.NotEqual(t, before, l.MemoryState())
}

func TestDoublyIdxFromOtherListIsOutOfBounds(t *testing.T) {
	a := NewDoubly[int]()
	idxA := a.PushBack(1)
	b := NewDoubly[int]()
	b.PushBack(1)

	require.ErrorIs(t, b.IdxErr(idxA), ErrOutOfBounds)
	require.False(t, b.IsValid(idxA))
}

func TestDoublyRemovedNodeError(t *testing.T) {
	l := NewDoubly[int]()
	l.IntoLazyReclaim()
	idx := l.PushBack(1)
	l.PushBack(2)

	_, err := l.Remove(idx)
	require.NoError(t, err)

	require.ErrorIs(t, l.IdxErr(idx), ErrRemovedNode)
}

func TestDoublySwapFrontBack(t *testing.T) {
	l := NewDoubly[int]()
	prior, had := l.SwapFront(1)
	require.False(t, had)
	require.Equal(t, 1, *l.Front())

	prior, had = l.SwapFront(2)
	require.True(t, had)
	require.Equal(t, 1, prior)
	require.Equal(t, 2, *l.Front())

	prior, had = l.SwapBack(3)
	require.True(t, had)
	require.Equal(t, 2, prior)
	require.Equal(t, 3, *l.Back())
}

func TestDoublyEqual(t *testing.T) {
	a := NewDoubly[int]()
	b := NewDoubly[int]()
	for _, v := range []int{1, 2, 3} {
		a.PushBack(v)
		b.PushBack(v)
	}
	require.True(t, a.Equal(b, func(x, y int) bool { return x == y }))

	b.PushBack(4)
	require.False(t, a.Equal(b, func(x, y int) bool { return x == y }))
}
