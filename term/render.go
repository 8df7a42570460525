package term

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/termsnake/termsnake/rules"
)

const (
	defaultColor = termbox.ColorDefault
	borderColor  = termbox.ColorWhite
	snakeColor   = termbox.ColorGreen
	snakeBg      = termbox.ColorWhite
	appleColor   = termbox.ColorRed
	appleBg      = termbox.ColorBlack
	scoreColor   = termbox.ColorBlack
	scoreBg      = termbox.ColorWhite
)

const (
	borderRune = '█'
	appleRune  = 'O'
)

// Render draws one full frame: border, score line, apple and snake.
func Render(s Screen, game *rules.Game) error {
	if err := s.Clear(); err != nil {
		return err
	}

	renderBorder(s, game.Height, game.Width)
	tbprint(s, 0, game.Height-1, scoreColor, scoreBg, fmt.Sprintf("Score: %d", game.Score))
	renderApple(s, game.Apple)
	renderSnake(s, game.Snake)

	return s.Flush()
}

// RenderMessage writes an end-of-game line over the bottom border.
func RenderMessage(s Screen, game *rules.Game, msg string) error {
	tbprint(s, 0, game.Height-1, scoreColor, scoreBg, msg)
	return s.Flush()
}

func renderBorder(s Screen, height, width int) {
	for col := 0; col < width; col++ {
		s.SetCell(col, 0, borderRune, borderColor, defaultColor)
		s.SetCell(col, height-1, borderRune, borderColor, defaultColor)
	}
	for row := 1; row < height-1; row++ {
		s.SetCell(0, row, borderRune, borderColor, defaultColor)
		s.SetCell(width-1, row, borderRune, borderColor, defaultColor)
	}
}

func renderApple(s Screen, apple rules.Point) {
	s.SetCell(apple.Col, apple.Row, appleRune, appleColor, appleBg)
}

func renderSnake(s Screen, snake *rules.Snake) {
	for _, seg := range snake.Body {
		s.SetCell(seg.Pos.Col, seg.Pos.Row, segmentRune(seg.Heading), snakeColor, snakeBg)
	}
}

// segmentRune is the chevron glyph for a segment's heading.
func segmentRune(d rules.Direction) rune {
	switch d {
	case rules.Up:
		return '^'
	case rules.Down:
		return 'v'
	case rules.Left:
		return '<'
	}
	return '>'
}

func tbprint(s Screen, x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		s.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
