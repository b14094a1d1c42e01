package rover

import "github.com/vovakirdan/grid-rover/internal/core"

// Line rasterizes the segment from -> to into unit steps using integer
// error accumulation. The axis with the strictly larger span drives the
// walk (y wins ties); the other axis steps whenever the error drops below
// zero and it has not yet reached its target. Equal endpoints give an
// empty path.
func Line(from, to Position) Directions {
	dx, dy := to.X-from.X, to.Y-from.Y
	sx, sy := core.Sign(dx), core.Sign(dy)
	adx, ady := core.Abs(dx), core.Abs(dy)

	path := make(Directions, 0, adx+ady)
	x, y := from.X, from.Y

	if adx > ady {
		err := adx / 2
		for x != to.X {
			x += sx
			path = append(path, horizontal(sx))
			err -= ady
			if err < 0 && y != to.Y {
				y += sy
				path = append(path, vertical(sy))
				err += adx
			}
		}
		return path
	}

	err := ady / 2
	for y != to.Y {
		y += sy
		path = append(path, vertical(sy))
		err -= adx
		if err < 0 && x != to.X {
			x += sx
			path = append(path, horizontal(sx))
			err += ady
		}
	}
	return path
}

func horizontal(step int) Direction {
	if step < 0 {
		return West
	}
	return East
}

func vertical(step int) Direction {
	if step < 0 {
		return South
	}
	return North
}
