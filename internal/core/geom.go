// Package core provides geometry and drawing primitives shared by the rover
// engine and its front ends. It has no external dependencies so that the
// movement logic built on top of it stays pure and testable.
package core

// Rect represents an axis-aligned rectangle of grid cells.
type Rect struct {
	X, Y int // Origin (lowest coordinate on both axes)
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns a size x size rectangle anchored at the origin.
func Square(size int) Rect {
	return Rect{W: size, H: size}
}

// Right returns the exclusive x bound.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive y bound.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampPoint pulls (x, y) onto the nearest cell inside the rectangle.
// Each axis is clamped independently.
func (r Rect) ClampPoint(x, y int) (int, int) {
	return Clamp(x, r.X, r.Right()-1), Clamp(y, r.Y, r.Bottom()-1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or +1 matching the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
