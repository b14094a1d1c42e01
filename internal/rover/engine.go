// Package rover implements the movement engine for a single agent on a
// bounded square grid.
//
// The engine turns movement intents into unit steps. Explicit command
// batches ("N,N,E,E") are validated as a whole before any step runs, so a
// rejected batch never moves the rover. Target-directed moves are
// rasterized into an equivalent command batch and executed the same way.
//
// Steps that would leave the grid are clamped back onto it. Power is only
// spent on steps that actually change the position, so bumping into an
// edge is free.
//
// An Engine is owned by a single caller and is not safe for concurrent use.
package rover

import "fmt"

// Engine holds the rover's position and the power spent so far.
type Engine struct {
	grid  Grid
	pos   Position
	power int
}

type settings struct {
	start    Position
	gridSize int
}

// Option configures a new Engine.
type Option func(*settings)

// WithPosition sets the starting cell. The default is (0, 0).
func WithPosition(x, y int) Option {
	return func(s *settings) {
		s.start = Position{X: x, Y: y}
	}
}

// WithGridSize sets the grid edge length. The default is DefaultGridSize.
func WithGridSize(size int) Option {
	return func(s *settings) {
		s.gridSize = size
	}
}

// New creates an engine with zero power used.
// It fails with ErrOutOfBounds if the start lies outside the grid.
func New(opts ...Option) (*Engine, error) {
	s := settings{gridSize: DefaultGridSize}
	for _, opt := range opts {
		opt(&s)
	}

	grid, err := NewGrid(s.gridSize)
	if err != nil {
		return nil, err
	}
	if err := grid.Check(s.start.X, s.start.Y); err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}

	return &Engine{grid: grid, pos: s.start}, nil
}

// Position returns the current cell.
func (e *Engine) Position() Position {
	return e.pos
}

// PowerUsed returns the number of effective moves made since construction.
func (e *Engine) PowerUsed() int {
	return e.power
}

// Grid returns the grid the engine is bounded by.
func (e *Engine) Grid() Grid {
	return e.grid
}

// ParseCommands validates the whole batch and then applies it in order.
// On error the position and power are left untouched.
func (e *Engine) ParseCommands(input CommandInput) error {
	dirs, err := Normalize(input)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		e.step(d)
	}
	return nil
}

// Plan returns the command batch MoveTo(x, y) would execute, without moving.
func (e *Engine) Plan(x, y int) (Directions, error) {
	if err := e.grid.Check(x, y); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	return Line(e.pos, Position{X: x, Y: y}), nil
}

// MoveTo walks towards (x, y) along a rasterized straight line.
func (e *Engine) MoveTo(x, y int) error {
	path, err := e.Plan(x, y)
	if err != nil {
		return err
	}
	return e.ParseCommands(path)
}

// step applies one direction and charges power only if the clamped
// position differs from the current one.
func (e *Engine) step(d Direction) {
	dx, dy := d.Delta()
	next := e.grid.Clamp(Position{X: e.pos.X + dx, Y: e.pos.Y + dy})
	if next == e.pos {
		return
	}
	e.pos = next
	e.power++
}

// String summarizes the engine state, e.g. "position (2, 2), power 4".
func (e *Engine) String() string {
	return fmt.Sprintf("position %s, power %d", e.pos, e.power)
}
