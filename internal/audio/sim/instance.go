package sim

import (
	"fmt"

	"github.com/zjrosen/audioreg/internal/audio"
)

// State is the playback state of a simulated instance.
type State string

const (
	StateStopped  State = "stopped"
	StatePlaying  State = "playing"
	StateStopping State = "stopping" // fading out
)

// Instance is a simulated event instance. All methods lock the owning engine.
type Instance struct {
	engine *Engine
	id     string
	desc   *Description

	state    State
	paused   bool
	volume   float32
	attrs    audio.Attributes3D
	released bool

	starts          int
	immediateStops  int
	fadeoutStops    int
	releases        int
	set3DAttributes int
}

// Snapshot is a point-in-time copy of an instance's observable state.
type Snapshot struct {
	ID       string
	Event    string
	State    State
	Paused   bool
	Volume   float32
	Attrs    audio.Attributes3D
	Released bool

	Starts          int
	ImmediateStops  int
	FadeoutStops    int
	Releases        int
	Set3DAttributes int
}

// ID returns the instance's unique identifier.
func (i *Instance) ID() string { return i.id }

// Snapshot returns the instance's current state.
func (i *Instance) Snapshot() Snapshot {
	i.engine.mu.Lock()
	defer i.engine.mu.Unlock()
	return i.snapshotLocked()
}

func (i *Instance) snapshotLocked() Snapshot {
	return Snapshot{
		ID:              i.id,
		Event:           i.desc.info.Path,
		State:           i.state,
		Paused:          i.paused,
		Volume:          i.volume,
		Attrs:           i.attrs,
		Released:        i.released,
		Starts:          i.starts,
		ImmediateStops:  i.immediateStops,
		FadeoutStops:    i.fadeoutStops,
		Releases:        i.releases,
		Set3DAttributes: i.set3DAttributes,
	}
}

// with runs fn under the engine lock, failing if the instance was released.
func (i *Instance) with(fn func() error) error {
	i.engine.mu.Lock()
	defer i.engine.mu.Unlock()
	if i.released {
		return fmt.Errorf("%w: %s", audio.ErrInvalidHandle, i.id)
	}
	return fn()
}

// Start implements audio.Instance. Starting a playing instance restarts it.
func (i *Instance) Start() error {
	return i.with(func() error {
		i.starts++
		i.state = StatePlaying
		return nil
	})
}

// Stop implements audio.Instance.
func (i *Instance) Stop(mode audio.StopMode) error {
	return i.with(func() error {
		switch mode {
		case audio.StopImmediate:
			i.immediateStops++
			i.state = StateStopped
		case audio.StopAllowFadeout:
			i.fadeoutStops++
			if i.state == StatePlaying && i.desc.info.Fadeout > 0 {
				i.state = StateStopping
			} else {
				i.state = StateStopped
			}
		default:
			return fmt.Errorf("unknown stop mode %v", mode)
		}
		return nil
	})
}

// SetPaused implements audio.Instance.
func (i *Instance) SetPaused(paused bool) error {
	return i.with(func() error {
		i.paused = paused
		return nil
	})
}

// Paused implements audio.Instance.
func (i *Instance) Paused() (bool, error) {
	var paused bool
	err := i.with(func() error {
		paused = i.paused
		return nil
	})
	return paused, err
}

// SetVolume implements audio.Instance.
func (i *Instance) SetVolume(volume float32) error {
	return i.with(func() error {
		i.volume = volume
		return nil
	})
}

// Volume implements audio.Instance.
func (i *Instance) Volume() (float32, error) {
	var volume float32
	err := i.with(func() error {
		volume = i.volume
		return nil
	})
	return volume, err
}

// Set3DAttributes implements audio.Instance.
func (i *Instance) Set3DAttributes(attrs audio.Attributes3D) error {
	return i.with(func() error {
		i.set3DAttributes++
		i.attrs = attrs
		return nil
	})
}

// Get3DAttributes implements audio.Instance.
func (i *Instance) Get3DAttributes() (audio.Attributes3D, error) {
	var attrs audio.Attributes3D
	err := i.with(func() error {
		attrs = i.attrs
		return nil
	})
	return attrs, err
}

// Release implements audio.Instance. The handle is invalid afterwards.
func (i *Instance) Release() error {
	return i.with(func() error {
		i.releases++
		i.released = true
		return nil
	})
}
