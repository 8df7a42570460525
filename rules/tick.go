package rules

import (
	log "github.com/sirupsen/logrus"
)

// GameState is the outcome of a single tick.
type GameState int

const (
	// Continue means the game goes on.
	Continue GameState = iota
	// Over means the snake collided with the border or itself.
	Over
	// Win means the snake filled every interior cell.
	Win
)

func (s GameState) String() string {
	switch s {
	case Continue:
		return "continue"
	case Over:
		return "over"
	case Win:
		return "win"
	}
	return "unknown"
}

// Tick runs the game one turn in the given direction and updates the state.
// Wall and self collisions come back as Over, a full board as Win; neither is
// an error. On Over and Win the game's Cause records what ended it.
func (g *Game) Tick(dir Direction) GameState {
	g.Turn++

	// 1. remember the tail so the snake can grow back onto it
	oldTail := g.Snake.Tail()
	// 2. move the snake one cell
	g.Snake.Move(dir)
	head := g.Snake.Head().Pos
	// 3. the head's cell is no longer open
	g.Open.Remove(head)

	// 4. border collision
	if outOfBounds(head, g.Height, g.Width) {
		g.Cause = CauseWallCollision
		g.logEnd()
		return Over
	}
	// 5. self collision
	if bodyCollision(head, g.Snake) {
		g.Cause = CauseSelfCollision
		g.logEnd()
		return Over
	}

	// 6. eat the apple: grow, score and replace it
	if head.Equal(g.Apple) {
		if g.Open.Len() == 0 {
			g.Cause = CauseBoardFilled
			g.logEnd()
			return Win
		}
		g.Snake.Grow(oldTail)
		g.Score += ScorePerApple
		apple, err := g.Open.Pick(g.Rand)
		if err != nil {
			// unreachable, Len was checked above
			g.Cause = CauseBoardFilled
			return Win
		}
		g.Apple = apple
		g.Open.Remove(apple)
		log.WithFields(log.Fields{
			"game":  g.ID,
			"turn":  g.Turn,
			"score": g.Score,
		}).Debug("apple eaten")
		return Continue
	}

	// 7. nothing eaten: the tail's old cell is free again, unless the head
	// just moved into it
	if !oldTail.Pos.Equal(head) {
		g.Open.Insert(oldTail.Pos)
	}
	return Continue
}

func (g *Game) logEnd() {
	log.WithFields(log.Fields{
		"game":  g.ID,
		"turn":  g.Turn,
		"score": g.Score,
		"cause": g.Cause,
	}).Info("game ended")
}

func outOfBounds(head Point, height, width int) bool {
	return head.Row == 0 || head.Row >= height-1 || head.Col == 0 || head.Col >= width-1
}

func bodyCollision(head Point, snake *Snake) bool {
	for _, seg := range snake.Body[1:] {
		if seg.Pos.Equal(head) {
			return true
		}
	}
	return false
}
