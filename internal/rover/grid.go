package rover

import (
	"fmt"

	"github.com/vovakirdan/grid-rover/internal/core"
)

// DefaultGridSize is the edge length of the grid when none is configured.
const DefaultGridSize = 10

// Position is a cell on the grid. Y grows northwards.
type Position struct {
	X int
	Y int
}

// String formats the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is the square area the rover may occupy: [0, size-1] on both axes.
type Grid struct {
	bounds core.Rect
}

// NewGrid creates a size x size grid.
func NewGrid(size int) (Grid, error) {
	if size < 1 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidGridSize, size)
	}
	return Grid{bounds: core.Square(size)}, nil
}

// Size returns the edge length of the grid.
func (g Grid) Size() int {
	return g.bounds.W
}

// Bound returns the largest valid coordinate on either axis.
func (g Grid) Bound() int {
	return g.bounds.W - 1
}

// Contains reports whether both coordinates lie in [0, Bound()].
func (g Grid) Contains(x, y int) bool {
	return g.bounds.Contains(x, y)
}

// Clamp pulls p back onto the grid, one axis at a time.
func (g Grid) Clamp(p Position) Position {
	x, y := g.bounds.ClampPoint(p.X, p.Y)
	return Position{X: x, Y: y}
}

// Check returns ErrOutOfBounds, with the offending pair, unless (x, y) is on the grid.
func (g Grid) Check(x, y int) error {
	if !g.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) not within [0, %d]", ErrOutOfBounds, x, y, g.Bound())
	}
	return nil
}
