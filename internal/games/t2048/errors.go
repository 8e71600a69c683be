package t2048

import "errors"

var (
	// ErrInvalidDirection is returned by ApplyMove for a value outside the
	// four directions. It indicates a broken input decoder.
	ErrInvalidDirection = errors.New("t2048: invalid direction")

	// ErrInvalidState is returned when a saved game cannot be restored.
	// Callers recover by starting a new game.
	ErrInvalidState = errors.New("t2048: invalid saved state")
)
