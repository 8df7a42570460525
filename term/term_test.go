package term

import (
	termbox "github.com/nsf/termbox-go"
)

// fakeScreen records cells in memory and replays scripted key events.
type fakeScreen struct {
	width, height int
	cells         map[cellKey]rune
	events        chan termbox.Event
	flushes       int
}

type cellKey struct{ x, y int }

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		width:  width,
		height: height,
		cells:  map[cellKey]rune{},
		events: make(chan termbox.Event, 16),
	}
}

func (f *fakeScreen) Size() (int, int) { return f.width, f.height }

func (f *fakeScreen) Clear() error {
	f.cells = map[cellKey]rune{}
	return nil
}

func (f *fakeScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	f.cells[cellKey{x, y}] = ch
}

func (f *fakeScreen) Flush() error {
	f.flushes++
	return nil
}

func (f *fakeScreen) PollEvent() termbox.Event { return <-f.events }

func (f *fakeScreen) Close() {}

// rowString reads back a row of cells as text, trimming unset cells.
func (f *fakeScreen) rowString(y, from, to int) string {
	out := []rune{}
	for x := from; x < to; x++ {
		if ch, ok := f.cells[cellKey{x, y}]; ok {
			out = append(out, ch)
		}
	}
	return string(out)
}
