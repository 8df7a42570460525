package rules

// BodySegment is one cell of the snake plus the heading it was moving when it
// was placed there. The heading picks the chevron glyph used to draw it.
type BodySegment struct {
	Pos     Point
	Heading Direction
}

// Snake is the ordered body of the player's snake, head first. The body is
// never empty during play; the engine owns all bounds and collision checks.
type Snake struct {
	Body []BodySegment
}

// NewSnake builds a snake from segments given head first.
func NewSnake(segments ...BodySegment) *Snake {
	body := make([]BodySegment, len(segments))
	copy(body, segments)
	return &Snake{Body: body}
}

// Head returns the first segment of the body.
func (s *Snake) Head() BodySegment {
	return s.Body[0]
}

// Tail returns the last segment of the body.
func (s *Snake) Tail() BodySegment {
	return s.Body[len(s.Body)-1]
}

// AdvanceHead pushes a new head one cell from the current head in the given
// direction. No bounds or collision checks happen here.
func (s *Snake) AdvanceHead(d Direction) {
	head := s.Head()
	s.Body = append([]BodySegment{{
		Pos:     head.Pos.Advance(d),
		Heading: d,
	}}, s.Body...)
}

// RetractTail drops the last segment of the body.
func (s *Snake) RetractTail() {
	s.Body = s.Body[:len(s.Body)-1]
}

// Grow appends a segment at the back, reinstating a tail that RetractTail
// just dropped. Called by the engine when the snake eats.
func (s *Snake) Grow(tail BodySegment) {
	s.Body = append(s.Body, tail)
}

// Move advances the head one cell and retracts the tail, the per-tick
// transform when the snake is not eating.
func (s *Snake) Move(d Direction) {
	s.AdvanceHead(d)
	s.RetractTail()
}

// Positions returns the cells the body occupies, head first.
func (s *Snake) Positions() []Point {
	points := make([]Point, len(s.Body))
	for i, seg := range s.Body {
		points[i] = seg.Pos
	}
	return points
}
