package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g, err := NewGame(10, 20, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NotEmpty(t, g.ID)
	require.Equal(t, 10, g.Height)
	require.Equal(t, 20, g.Width)
	require.Equal(t, 0, g.Score)

	require.Equal(t, Point{Row: 1, Col: 2}, g.Snake.Head().Pos)
	require.Equal(t, Point{Row: 1, Col: 1}, g.Snake.Tail().Pos)
	require.Equal(t, Right, g.Snake.Head().Heading)
	require.Equal(t, Point{Row: 1, Col: 5}, g.Apple)
}

func TestNewGameStateIsDisjoint(t *testing.T) {
	g, err := NewGame(10, 20, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, p := range g.Snake.Positions() {
		require.False(t, g.Open.Contains(p))
	}
	require.False(t, g.Open.Contains(g.Apple))
	// 8x18 interior minus two snake cells and the apple
	require.Equal(t, 8*18-3, g.Open.Len())
}

func TestNewGameGridTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewGame(2, 20, rng)
	require.Error(t, err)
	_, err = NewGame(20, 2, rng)
	require.Error(t, err)
}

func TestNewGameNoRoomForApple(t *testing.T) {
	// interior is only two columns wide, the apple's fixed cell is outside
	_, err := NewGame(10, 4, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
