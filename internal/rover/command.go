package rover

import (
	"fmt"
	"strings"
)

// CommandSeparator delimits direction codes in textual command input.
const CommandSeparator = ","

// CommandInput is a batch of movement commands.
// It is implemented by Text, Tokens and Directions only.
type CommandInput interface {
	tokens() []string
}

// Text is a comma-delimited command list such as "N,N,E,E".
// Tokens are not trimmed; " E" is an invalid command.
type Text string

func (t Text) tokens() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), CommandSeparator)
}

// Tokens is an ordered list of single-letter command codes.
type Tokens []string

func (t Tokens) tokens() []string {
	return t
}

// Directions is an ordered list of headings.
type Directions []Direction

func (d Directions) tokens() []string {
	out := make([]string, len(d))
	for i, dir := range d {
		out[i] = dir.String()
	}
	return out
}

// String renders the directions as Text, e.g. "N,E,N".
func (d Directions) String() string {
	return strings.Join(d.tokens(), CommandSeparator)
}

// CommandInputFrom adapts a dynamically typed value into a CommandInput.
// Strings become Text; []string, []Direction and []any become token
// sequences. Elements of a []any that are neither strings nor Directions are
// kept as their printed form so that validation reports them as invalid
// commands. Every other shape fails with ErrInvalidArgument.
func CommandInputFrom(v any) (CommandInput, error) {
	switch v := v.(type) {
	case CommandInput:
		return v, nil
	case string:
		return Text(v), nil
	case []string:
		return Tokens(v), nil
	case []Direction:
		return Directions(v), nil
	case []any:
		toks := make(Tokens, len(v))
		for i, elem := range v {
			switch elem := elem.(type) {
			case string:
				toks[i] = elem
			case Direction:
				toks[i] = elem.String()
			default:
				toks[i] = fmt.Sprint(elem)
			}
		}
		return toks, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidArgument, v)
	}
}

// Normalize validates every token in input and returns the resolved
// directions. Nothing is returned unless the whole batch is valid.
func Normalize(input CommandInput) (Directions, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: got nil", ErrInvalidArgument)
	}

	toks := input.tokens()
	dirs := make(Directions, 0, len(toks))
	var invalid []string
	for _, tok := range toks {
		d, ok := ParseDirection(tok)
		if !ok {
			invalid = append(invalid, tok)
			continue
		}
		dirs = append(dirs, d)
	}

	if len(invalid) > 0 {
		return nil, &InvalidCommandError{Tokens: invalid}
	}
	return dirs, nil
}
