package rules

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrNoOpenSpace is returned by Pick when every interior cell is occupied.
var ErrNoOpenSpace = errors.New("rules: no open space left")

// OpenSpace is the set of interior cells not occupied by the snake or the
// apple. New apples are always drawn from it.
type OpenSpace struct {
	cells map[Point]struct{}
}

// NewOpenSpace populates every interior cell of a height x width grid except
// the excluded ones. The border is one cell thick on all sides.
func NewOpenSpace(height, width int, excluded []Point) *OpenSpace {
	o := &OpenSpace{cells: map[Point]struct{}{}}
	for row := 1; row < height-1; row++ {
		for col := 1; col < width-1; col++ {
			o.cells[Point{Row: row, Col: col}] = struct{}{}
		}
	}
	for _, p := range excluded {
		delete(o.cells, p)
	}
	return o
}

// Remove takes a cell out of the set. Removing a cell that isn't a member is
// a no-op; the border and occupied cells are simply never members.
func (o *OpenSpace) Remove(p Point) {
	delete(o.cells, p)
}

// Insert adds a vacated cell back to the set.
func (o *OpenSpace) Insert(p Point) {
	o.cells[p] = struct{}{}
}

// Contains reports whether p is a free cell.
func (o *OpenSpace) Contains(p Point) bool {
	_, ok := o.cells[p]
	return ok
}

// Len returns the number of free cells.
func (o *OpenSpace) Len() int {
	return len(o.cells)
}

// Pick selects a free cell uniformly at random. Members are enumerated in
// (row, col) order before indexing so a seeded rng always picks the same
// cell.
func (o *OpenSpace) Pick(rng *rand.Rand) (Point, error) {
	if len(o.cells) == 0 {
		return Point{}, ErrNoOpenSpace
	}
	points := make([]Point, 0, len(o.cells))
	for p := range o.cells {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	return points[rng.Intn(len(points))], nil
}
