package rules

// Direction is one of the four headings a snake segment can move in.
type Direction int

// The four grid directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite reports whether other lies on the same axis as d and points the
// other way. A snake can never reverse onto itself, so the game loop filters
// opposite commands out before they reach the engine.
func (d Direction) Opposite(other Direction) bool {
	switch {
	case d == Up && other == Down, d == Down && other == Up:
		return true
	case d == Left && other == Right, d == Right && other == Left:
		return true
	}
	return false
}

// Point is a grid coordinate. Row 0, col 0 is the top-left corner of the
// terminal; the playable interior starts at (1, 1).
type Point struct {
	Row int
	Col int
}

// Equal checks if 2 points are the same row,col coordinate.
func (p Point) Equal(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Less orders points by (row, col). Used to give OpenSpace a stable
// enumeration order for random picks.
func (p Point) Less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Advance returns the cell adjacent to p in direction d. Callers must keep
// the snake inside the border before advancing; moving above row 0 or left of
// col 0 panics rather than wrapping.
func (p Point) Advance(d Direction) Point {
	switch d {
	case Up:
		if p.Row == 0 {
			panic("rules: advance above row 0")
		}
		return Point{Row: p.Row - 1, Col: p.Col}
	case Down:
		return Point{Row: p.Row + 1, Col: p.Col}
	case Left:
		if p.Col == 0 {
			panic("rules: advance left of col 0")
		}
		return Point{Row: p.Row, Col: p.Col - 1}
	case Right:
		return Point{Row: p.Row, Col: p.Col + 1}
	}
	return p
}
