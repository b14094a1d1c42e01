package rover

import "fmt"

// Direction is one of the four compass headings the rover can step in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the valid directions in clockwise order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the single-letter command code ("N", "E", "S", "W").
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Name returns the human-readable heading name.
func (d Direction) Name() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four headings.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the unit displacement for one step. North increases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseDirection resolves a case-sensitive command code.
func ParseDirection(code string) (Direction, bool) {
	switch code {
	case "N":
		return North, true
	case "E":
		return East, true
	case "S":
		return South, true
	case "W":
		return West, true
	default:
		return 0, false
	}
}
