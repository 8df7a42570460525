package worker

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/termsnake/termsnake/rules"
	"github.com/termsnake/termsnake/term"
)

// TickInterval is how long one game turn lasts: render, sample input,
// advance the engine.
const TickInterval = 62500 * time.Microsecond

// Runner drives a single game to completion. Each tick it renders the
// current state, waits out the tick while collecting input, resolves the
// direction and advances the rules engine. Only the most recent steering
// command received during a tick counts. It returns when the game is over or
// won, or on the first terminal I/O error.
func Runner(screen term.Screen, game *rules.Game, commands <-chan term.Command, interval time.Duration) error {
	// the snake starts out heading right
	dir := rules.Right

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := term.Render(screen, game); err != nil {
			return err
		}

		dir = nextDirection(dir, commands, ticker.C)
		// a reversal would walk the snake straight into its own neck,
		// keep the current heading instead
		if heading := game.Snake.Head().Heading; heading.Opposite(dir) {
			dir = heading
		}

		scoreBefore := game.Score
		start := time.Now()
		state := game.Tick(dir)
		observeTick(game, scoreBefore, time.Since(start))

		log.WithFields(log.Fields{
			"game":  game.ID,
			"turn":  game.Turn,
			"state": state,
		}).Debug("tick")

		switch state {
		case rules.Over:
			return endGame(screen, game, commands, fmt.Sprintf("Game Over: %d", game.Score))
		case rules.Win:
			return endGame(screen, game, commands, fmt.Sprintf("You Win! Final score: %d", game.Score))
		}
	}
}

// nextDirection waits for the tick to elapse, keeping the last steering
// command that arrives in the window. CommandPause is decoded upstream but
// not consumed here yet; it and CommandUnknown leave the direction alone.
func nextDirection(dir rules.Direction, commands <-chan term.Command, tick <-chan time.Time) rules.Direction {
	for {
		select {
		case cmd := <-commands:
			if d, ok := cmd.Direction(); ok {
				dir = d
			}
		case <-tick:
			return dir
		}
	}
}

// endGame shows the final message and holds the board on screen until the
// next key press.
func endGame(screen term.Screen, game *rules.Game, commands <-chan term.Command, msg string) error {
	gamesEnded.WithLabelValues(game.Cause).Inc()

	log.WithFields(log.Fields{
		"game":  game.ID,
		"turn":  game.Turn,
		"score": game.Score,
		"cause": game.Cause,
	}).Info("ending game")

	if err := term.RenderMessage(screen, game, msg); err != nil {
		return err
	}
	<-commands
	return nil
}
