package pinlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeUtilizationRatioEmptyIsOne(t *testing.T) {
	l := NewDoubly[int]()
	require.Equal(t, 1.0, l.NodeUtilization().Ratio())
}

func TestNodeUtilizationRatioReflectsClosedSlots(t *testing.T) {
	l := NewDoubly[int]()
	l.IntoLazyReclaim()
	idx := make([]NodeIdx[int], 4)
	for i := 0; i < 4; i++ {
		idx[i] = l.PushBack(i)
	}
	require.Equal(t, 1.0, l.NodeUtilization().Ratio())

	l.Remove(idx[1])
	u := l.NodeUtilization()
	require.Equal(t, 3, u.NumActive)
	require.Equal(t, 1, u.NumClosed)
	require.Equal(t, 4, u.Total())
	require.Equal(t, 0.75, u.Ratio())
}
