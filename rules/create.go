package rules

import (
	"fmt"
	"math/rand"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// ScorePerApple is the score awarded for each apple eaten.
	ScorePerApple = 100

	initialAppleRow = 1
	initialAppleCol = 5
)

// Game owns the full state of one snake session: the snake body, the free
// cells, the apple, the score and the grid dimensions. Nothing outside the
// game loop mutates it.
type Game struct {
	ID     string
	Height int
	Width  int
	Turn   int
	Score  int
	Snake  *Snake
	Open   *OpenSpace
	Apple  Point
	Cause  string
	Rand   *rand.Rand
}

// NewGame builds a game sized to the given grid: a two segment snake heading
// right with its head at (1, 2), the open space as every interior cell the
// snake doesn't cover, and the first apple at its fixed starting cell. The
// grid must be big enough to hold the border, the snake and the apple.
func NewGame(height, width int, rng *rand.Rand) (*Game, error) {
	if height <= 2 || width <= 2 {
		return nil, fmt.Errorf("rules: %dx%d grid has no interior cells", height, width)
	}

	snake := NewSnake(
		BodySegment{Pos: Point{Row: 1, Col: 2}, Heading: Right},
		BodySegment{Pos: Point{Row: 1, Col: 1}, Heading: Right},
	)
	open := NewOpenSpace(height, width, snake.Positions())

	apple := Point{Row: initialAppleRow, Col: initialAppleCol}
	if !open.Contains(apple) {
		return nil, fmt.Errorf("rules: %dx%d grid cannot hold the starting apple at (%d, %d)",
			height, width, apple.Row, apple.Col)
	}
	open.Remove(apple)

	game := &Game{
		ID:     uuid.NewV4().String(),
		Height: height,
		Width:  width,
		Snake:  snake,
		Open:   open,
		Apple:  apple,
		Rand:   rng,
	}

	log.WithFields(log.Fields{
		"game":   game.ID,
		"height": height,
		"width":  width,
	}).Info("created game")

	return game, nil
}
