package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOppositePairs(t *testing.T) {
	opposites := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, o := range opposites {
		require.True(t, d.Opposite(o), "%s should oppose %s", d, o)
		require.True(t, o.Opposite(d), "%s should oppose %s", o, d)
		require.False(t, d.Opposite(d), "%s should not oppose itself", d)
	}
}

func TestOppositePerpendicular(t *testing.T) {
	for _, d := range []Direction{Left, Right} {
		require.False(t, Up.Opposite(d))
		require.False(t, Down.Opposite(d))
	}
}

func TestAdvance(t *testing.T) {
	p := Point{Row: 3, Col: 4}
	require.Equal(t, Point{Row: 2, Col: 4}, p.Advance(Up))
	require.Equal(t, Point{Row: 4, Col: 4}, p.Advance(Down))
	require.Equal(t, Point{Row: 3, Col: 3}, p.Advance(Left))
	require.Equal(t, Point{Row: 3, Col: 5}, p.Advance(Right))
}

func TestAdvancePanicsAtOrigin(t *testing.T) {
	require.Panics(t, func() { Point{Row: 0, Col: 5}.Advance(Up) })
	require.Panics(t, func() { Point{Row: 5, Col: 0}.Advance(Left) })
}

func TestPointOrdering(t *testing.T) {
	require.True(t, Point{Row: 1, Col: 9}.Less(Point{Row: 2, Col: 0}))
	require.True(t, Point{Row: 1, Col: 1}.Less(Point{Row: 1, Col: 2}))
	require.False(t, Point{Row: 1, Col: 1}.Less(Point{Row: 1, Col: 1}))
	require.False(t, Point{Row: 2, Col: 0}.Less(Point{Row: 1, Col: 9}))
}

func TestPointEqual(t *testing.T) {
	require.True(t, Point{Row: 2, Col: 3}.Equal(Point{Row: 2, Col: 3}))
	require.False(t, Point{Row: 2, Col: 3}.Equal(Point{Row: 3, Col: 2}))
}
