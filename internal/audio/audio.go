// Package audio defines the capability audioreg consumes from an audio
// middleware engine: resolving authored events, creating playable instances
// and controlling them.
//
// The interfaces are intentionally narrow. Event graph evaluation, mixing and
// 3D panning all live behind them.
package audio

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEventNotFound indicates the engine has no event at the requested path.
	ErrEventNotFound = errors.New("event not found")

	// ErrInvalidHandle indicates an operation on an instance that was already released.
	ErrInvalidHandle = errors.New("invalid instance handle")
)

// StopMode selects how an instance ends playback.
type StopMode int

const (
	// StopImmediate truncates playback at once.
	StopImmediate StopMode = iota
	// StopAllowFadeout lets the event run its authored fade-out.
	StopAllowFadeout
)

// String returns a human-readable representation of the StopMode.
func (m StopMode) String() string {
	switch m {
	case StopImmediate:
		return "immediate"
	case StopAllowFadeout:
		return "allow-fadeout"
	default:
		return fmt.Sprintf("StopMode(%d)", int(m))
	}
}

// Vector3 is a position or direction in world space.
type Vector3 struct {
	X, Y, Z float32
}

// HasNaN reports whether any component is not-a-number.
func (v Vector3) HasNaN() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

// Attributes3D is the spatial state of an instance.
type Attributes3D struct {
	Position Vector3
	Velocity Vector3
	Forward  Vector3
	Up       Vector3
}

// Engine resolves authored events by path.
type Engine interface {
	Event(path string) (Description, error)
}

// Description is an authored event that instances are created from.
type Description interface {
	Path() string
	CreateInstance() (Instance, error)
}

// Instance is one live, playable occurrence of an event. It holds
// engine-side resources until Release is called. Registries treat two
// instances as the same only if they compare equal, so implementations
// should be pointer types.
type Instance interface {
	Start() error
	Stop(mode StopMode) error
	SetPaused(paused bool) error
	Paused() (bool, error)
	SetVolume(volume float32) error
	Volume() (float32, error)
	Set3DAttributes(attrs Attributes3D) error
	Get3DAttributes() (Attributes3D, error)
	Release() error
}
