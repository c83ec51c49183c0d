package rules

import "github.com/pkg/errors"

var (
	// ErrInvalidSnake is returned when the snake body breaks its shape
	// invariants: shorter than 2, or neighbouring segments that are not one
	// axis-aligned step apart. It signals a logic defect, never a game over.
	ErrInvalidSnake = errors.New("rules: invalid snake positions")
	// ErrNotPlaying is returned when a tick is requested on a game that is
	// not in the playing state.
	ErrNotPlaying = errors.New("rules: game is not playing")
	// ErrInvalidConfig is returned when a game cannot be created from the
	// given configuration.
	ErrInvalidConfig = errors.New("rules: invalid game config")
)
