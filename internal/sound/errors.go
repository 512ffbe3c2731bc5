package sound

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoot indicates the registry root was never constructed.
	ErrNoRoot = errors.New("sound registry not initialized")

	// ErrElementNotFound indicates the element has no registry root.
	ErrElementNotFound = errors.New("element not found")

	// ErrSlotNotFound indicates no instance is attached for the event.
	ErrSlotNotFound = errors.New("event instance not found")

	// ErrInvalidPosition indicates a position with a NaN component.
	ErrInvalidPosition = errors.New("position contains NaN")
)

// EngineError reports a failed call into the audio engine.
type EngineError struct {
	Op    string
	Event EventID
	Err   error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s for event %q: %v", e.Op, e.Event, e.Err)
}

// Unwrap returns the engine's error.
func (e *EngineError) Unwrap() error {
	return e.Err
}
