package sound

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
	"github.com/zjrosen/audioreg/internal/registry"
)

// OwnerlessEvents tracks event instances that belong to no element, at most
// one per event. A nil *OwnerlessEvents fails every call with ErrNoRoot.
type OwnerlessEvents struct {
	core
	events *registry.Registry[EventID]
}

// NewOwnerlessEvents creates an empty ownerless registry.
func NewOwnerlessEvents(engine audio.Engine, opts ...Option) *OwnerlessEvents {
	return &OwnerlessEvents{
		core:   newCore(engine, opts),
		events: registry.New[EventID](),
	}
}

// Slots returns the occupied events, sorted.
func (g *OwnerlessEvents) Slots() []EventID {
	if g == nil {
		return nil
	}
	return sortedEvents(g.events.Keys())
}

// Attach stores inst as the instance for v, retiring any different instance
// already there.
func (g *OwnerlessEvents) Attach(v EventID, inst audio.Instance) error {
	if g == nil {
		return ErrNoRoot
	}
	if err := g.events.Attach(v, inst); err != nil {
		return fmt.Errorf("attaching %q: %w", v, err)
	}
	return nil
}

// Lookup returns the instance attached for v.
func (g *OwnerlessEvents) Lookup(v EventID) (audio.Instance, bool) {
	inst, err := g.instance(v)
	return inst, err == nil
}

// Load creates a fresh instance of v and attaches it.
func (g *OwnerlessEvents) Load(v EventID) (err error) {
	if g == nil {
		return ErrNoRoot
	}
	span := g.startSpan("sound.ownerless.load", attribute.String("audio.event", string(v)))
	defer func() { endSpan(span, err) }()

	inst, err := g.instantiate(v)
	if err != nil {
		return err
	}
	if err := g.Attach(v, inst); err != nil {
		discard(inst, v)
		return err
	}
	log.Debug(log.CatSound, "Ownerless event loaded", "event", v)
	return nil
}

// Release retires the instance for v and removes the slot.
func (g *OwnerlessEvents) Release(v EventID) (err error) {
	if g == nil {
		return ErrNoRoot
	}
	span := g.startSpan("sound.ownerless.release", attribute.String("audio.event", string(v)))
	defer func() { endSpan(span, err) }()

	if !g.events.Release(v) {
		return fmt.Errorf("%w: event %q", ErrSlotNotFound, v)
	}
	log.Debug(log.CatSound, "Ownerless event released", "event", v)
	return nil
}

// Play starts the instance for v.
func (g *OwnerlessEvents) Play(v EventID) error {
	inst, err := g.instance(v)
	if err != nil {
		return err
	}
	play(inst, v)
	return nil
}

// Stop stops the instance for v, immediately or with fade-out.
func (g *OwnerlessEvents) Stop(v EventID, immediate bool) error {
	inst, err := g.instance(v)
	if err != nil {
		return err
	}
	stop(inst, v, immediate)
	return nil
}

// SetPaused pauses or resumes the instance for v.
func (g *OwnerlessEvents) SetPaused(v EventID, p bool) error {
	inst, err := g.instance(v)
	if err != nil {
		return err
	}
	setPaused(inst, v, p)
	return nil
}

// Paused reports whether the instance for v is paused.
func (g *OwnerlessEvents) Paused(v EventID) (bool, error) {
	inst, err := g.instance(v)
	if err != nil {
		return false, err
	}
	return paused(inst, v)
}

// SetVolume sets the volume of the instance for v.
func (g *OwnerlessEvents) SetVolume(v EventID, vol float32) error {
	inst, err := g.instance(v)
	if err != nil {
		return err
	}
	setVolume(inst, v, vol)
	return nil
}

// Volume returns the volume of the instance for v, or 0 on failure.
func (g *OwnerlessEvents) Volume(v EventID) (float32, error) {
	inst, err := g.instance(v)
	if err != nil {
		return 0, err
	}
	return volume(inst, v)
}

// SetPosition moves the instance for v. NaN positions are rejected.
func (g *OwnerlessEvents) SetPosition(v EventID, pos audio.Vector3) error {
	if pos.HasNaN() {
		return ErrInvalidPosition
	}
	inst, err := g.instance(v)
	if err != nil {
		return err
	}
	setPosition(inst, v, pos)
	return nil
}

// Position returns the position of the instance for v, or the zero vector
// on failure.
func (g *OwnerlessEvents) Position(v EventID) (audio.Vector3, error) {
	inst, err := g.instance(v)
	if err != nil {
		return audio.Vector3{}, err
	}
	return position(inst, v)
}

// Close retires every held instance.
func (g *OwnerlessEvents) Close() int {
	if g == nil {
		return 0
	}
	return g.events.Clear()
}

func (g *OwnerlessEvents) instance(v EventID) (audio.Instance, error) {
	if g == nil {
		return nil, ErrNoRoot
	}
	inst, ok := g.events.Lookup(v)
	if !ok {
		return nil, fmt.Errorf("%w: event %q", ErrSlotNotFound, v)
	}
	return inst, nil
}
