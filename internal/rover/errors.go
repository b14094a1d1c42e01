package rover

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfBounds is returned when a start or target coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("rover: coordinate out of bounds")

	// ErrInvalidArgument is returned when command input is neither delimited
	// text nor an ordered token sequence.
	ErrInvalidArgument = errors.New("rover: command input must be text or a token sequence")

	// ErrInvalidCommand matches any *InvalidCommandError via errors.Is.
	ErrInvalidCommand = errors.New("rover: invalid command")

	// ErrInvalidGridSize is returned when the grid extent is smaller than one cell.
	ErrInvalidGridSize = errors.New("rover: grid size must be at least 1")
)

// InvalidCommandError reports every token in a batch that did not resolve to a direction.
type InvalidCommandError struct {
	Tokens []string
}

func (e *InvalidCommandError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, tok := range e.Tokens {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	return fmt.Sprintf("rover: invalid commands %s (expected N, E, S or W)", strings.Join(quoted, ", "))
}

// Is makes errors.Is(err, ErrInvalidCommand) hold for any InvalidCommandError.
func (e *InvalidCommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}
