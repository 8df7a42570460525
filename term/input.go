package term

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/termsnake/termsnake/rules"
)

// Command is a decoded logical key press.
type Command int

const (
	// CommandUnknown is any key with no meaning to the game.
	CommandUnknown Command = iota
	// CommandPause is decoded from escape. The game loop does not consume
	// it yet; pause/resume is not implemented.
	CommandPause
	// CommandUp through CommandRight steer the snake.
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
)

// Decode maps a raw terminal event to a Command. The mapping is total:
// anything that isn't an arrow key or escape decodes to CommandUnknown.
func Decode(ev termbox.Event) Command {
	if ev.Type != termbox.EventKey {
		return CommandUnknown
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return CommandUp
	case termbox.KeyArrowDown:
		return CommandDown
	case termbox.KeyArrowLeft:
		return CommandLeft
	case termbox.KeyArrowRight:
		return CommandRight
	case termbox.KeyEsc:
		return CommandPause
	}
	return CommandUnknown
}

// Direction converts a steering command to its grid direction. ok is false
// for CommandPause and CommandUnknown; there is no fallback direction.
func (c Command) Direction() (dir rules.Direction, ok bool) {
	switch c {
	case CommandUp:
		return rules.Up, true
	case CommandDown:
		return rules.Down, true
	case CommandLeft:
		return rules.Left, true
	case CommandRight:
		return rules.Right, true
	}
	return 0, false
}

// Relay reads key events from the screen in the background and forwards
// decoded commands. It shares nothing with the game loop except the returned
// channel and runs until the process exits. The buffer lets a key pressed
// while the loop is rendering land without stalling the relay.
func Relay(s Screen) <-chan Command {
	commands := make(chan Command, 1)
	go func(commands chan<- Command) {
		for {
			commands <- Decode(s.PollEvent())
		}
	}(commands)
	return commands
}
