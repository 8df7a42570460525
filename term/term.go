// Package term wraps the terminal the game draws to and reads keys from.
// The game core only sees the Screen interface, so tests run against a fake
// and nothing touches the termbox globals outside this package.
package term

import (
	termbox "github.com/nsf/termbox-go"
)

// Screen is the terminal surface the game renders to and reads keys from.
type Screen interface {
	// Size returns the terminal dimensions in character cells.
	Size() (width, height int)
	// Clear wipes the whole screen.
	Clear() error
	// SetCell places a single glyph. x is the column, y the row.
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	// Flush makes all SetCell calls since the last Flush visible.
	Flush() error
	// PollEvent blocks until the next keyboard event.
	PollEvent() termbox.Event
	// Close restores the terminal.
	Close()
}

// Open initializes the terminal and hides the cursor. The returned Screen is
// a value and can be handed to the render loop and the input relay alike.
func Open() (Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return termboxScreen{}, nil
}

// termboxScreen forwards to the termbox package functions. termbox keeps its
// own global state, so the value carries nothing.
type termboxScreen struct{}

func (termboxScreen) Size() (int, int) { return termbox.Size() }

func (termboxScreen) Clear() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Flush() error { return termbox.Flush() }

func (termboxScreen) PollEvent() termbox.Event { return termbox.PollEvent() }

func (termboxScreen) Close() { termbox.Close() }
