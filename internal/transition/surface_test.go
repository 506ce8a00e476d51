package transition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSurfaceOrdering(t *testing.T) {
	root := NewSurface("root", nil)
	a, b, c := NewSurface("a", nil), NewSurface("b", nil), NewSurface("c", nil)
	root.AddSubview(a)
	root.AddSubview(b)
	root.InsertSubviewAbove(c, a)
	require.Equal(t, []*Surface{a, c, b}, root.Subviews())

	root.InsertSubviewAbove(a, b)
	require.Equal(t, []*Surface{c, b, a}, root.Subviews(), "reinserting moves the surface")

	b.RemoveFromSuperview()
	require.Equal(t, []*Surface{c, a}, root.Subviews())
	require.Nil(t, b.Superview())

	other := NewSurface("other", nil)
	other.AddSubview(c)
	require.Equal(t, []*Surface{a}, root.Subviews(), "adding elsewhere detaches")
	require.Same(t, other, c.Superview())
}

func TestViewWithTag(t *testing.T) {
	root := NewSurface("root", nil)
	root.Tag = 7
	mid := NewSurface("mid", nil)
	leaf := NewSurface("leaf", nil)
	leaf.Tag = 7
	root.AddSubview(mid)
	mid.AddSubview(leaf)

	require.Same(t, leaf, root.ViewWithTag(7), "the receiver never matches itself")
	require.Nil(t, root.ViewWithTag(0))
	require.Nil(t, root.ViewWithTag(8))
}

func TestRectLerpAndRound(t *testing.T) {
	from := NewRect(0, 10, 20, 5)
	to := NewRect(10, 0, 20, 5)
	require.Equal(t, NewRect(5, 5, 20, 5), from.Lerp(to, 0.5))
	require.Equal(t, to, from.Lerp(to, 1))
	require.Equal(t, from, from.Lerp(to, -1))

	x, y, w, h := NewRect(1.4, 2.6, 9.5, 3.49).Round()
	require.Equal(t, []int{1, 3, 10, 3}, []int{x, y, w, h})
}

func TestCurves(t *testing.T) {
	require.Equal(t, 0.0, EaseOut(0))
	require.Equal(t, 1.0, EaseOut(1))
	require.Greater(t, EaseOut(0.25), 0.25)
	require.Equal(t, 0.5, Linear(0.5))
	require.Equal(t, 1.0, Linear(3))
}
