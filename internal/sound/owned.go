package sound

import (
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
	"github.com/zjrosen/audioreg/internal/registry"
)

// OwnedEvents tracks event instances per world element, at most one per
// (element, event) pair.
//
// Elements must be added with AddElement before anything can be attached to
// them. A nil *OwnedEvents behaves as a missing root: every call fails with
// ErrNoRoot.
type OwnedEvents struct {
	core
	elements map[ElementID]*registry.Registry[EventID]
}

// OwnedSlot identifies one occupied owned slot.
type OwnedSlot struct {
	Element ElementID
	Event   EventID
}

// NewOwnedEvents creates an owned registry with no elements.
func NewOwnedEvents(engine audio.Engine, opts ...Option) *OwnedEvents {
	return &OwnedEvents{
		core:     newCore(engine, opts),
		elements: make(map[ElementID]*registry.Registry[EventID]),
	}
}

// AddElement creates the root for element e. It reports false if the element
// already existed.
func (o *OwnedEvents) AddElement(e ElementID) (bool, error) {
	if o == nil {
		return false, ErrNoRoot
	}
	if _, ok := o.elements[e]; ok {
		return false, nil
	}
	o.elements[e] = registry.New[EventID]()
	log.Debug(log.CatSound, "Element added", "element", e)
	return true, nil
}

// RemoveElement retires every instance held for e and drops its root.
// It returns the number of instances retired.
func (o *OwnedEvents) RemoveElement(e ElementID) (int, error) {
	events, err := o.element(e)
	if err != nil {
		return 0, err
	}
	delete(o.elements, e)
	n := events.Clear()
	log.Debug(log.CatSound, "Element removed", "element", e, "retired", n)
	return n, nil
}

// HasElement reports whether e has a root.
func (o *OwnedEvents) HasElement(e ElementID) bool {
	if o == nil {
		return false
	}
	_, ok := o.elements[e]
	return ok
}

// Elements returns the elements with a root, sorted.
func (o *OwnedEvents) Elements() []ElementID {
	if o == nil {
		return nil
	}
	out := make([]ElementID, 0, len(o.elements))
	for e := range o.elements {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Slots returns every occupied slot, sorted by element then event.
func (o *OwnedEvents) Slots() []OwnedSlot {
	var out []OwnedSlot
	for _, e := range o.Elements() {
		for _, v := range sortedEvents(o.elements[e].Keys()) {
			out = append(out, OwnedSlot{Element: e, Event: v})
		}
	}
	return out
}

// Attach stores inst as the instance for (e, v), retiring any different
// instance already there. It fails without side effects if e has no root.
func (o *OwnedEvents) Attach(e ElementID, v EventID, inst audio.Instance) error {
	events, err := o.element(e)
	if err != nil {
		return err
	}
	if err := events.Attach(v, inst); err != nil {
		return fmt.Errorf("attaching %q to %q: %w", v, e, err)
	}
	return nil
}

// Lookup returns the instance attached for (e, v).
func (o *OwnedEvents) Lookup(e ElementID, v EventID) (audio.Instance, bool) {
	inst, err := o.instance(e, v)
	return inst, err == nil
}

// Load creates a fresh instance of v and attaches it to e.
func (o *OwnedEvents) Load(e ElementID, v EventID) (err error) {
	if o == nil {
		return ErrNoRoot
	}
	span := o.startSpan("sound.owned.load",
		attribute.String("audio.element", string(e)),
		attribute.String("audio.event", string(v)))
	defer func() { endSpan(span, err) }()

	if _, err := o.element(e); err != nil {
		return err
	}
	inst, err := o.instantiate(v)
	if err != nil {
		return err
	}
	if err := o.Attach(e, v, inst); err != nil {
		discard(inst, v)
		return err
	}
	log.Debug(log.CatSound, "Event loaded", "element", e, "event", v)
	return nil
}

// Release retires the instance for (e, v) and removes the slot.
func (o *OwnedEvents) Release(e ElementID, v EventID) (err error) {
	if o == nil {
		return ErrNoRoot
	}
	span := o.startSpan("sound.owned.release",
		attribute.String("audio.element", string(e)),
		attribute.String("audio.event", string(v)))
	defer func() { endSpan(span, err) }()

	events, err := o.element(e)
	if err != nil {
		return err
	}
	if !events.Release(v) {
		return slotNotFound(e, v)
	}
	log.Debug(log.CatSound, "Event released", "element", e, "event", v)
	return nil
}

// Play starts the instance for (e, v).
func (o *OwnedEvents) Play(e ElementID, v EventID) error {
	inst, err := o.instance(e, v)
	if err != nil {
		return err
	}
	play(inst, v)
	return nil
}

// Stop stops the instance for (e, v), immediately or with fade-out.
func (o *OwnedEvents) Stop(e ElementID, v EventID, immediate bool) error {
	inst, err := o.instance(e, v)
	if err != nil {
		return err
	}
	stop(inst, v, immediate)
	return nil
}

// SetPaused pauses or resumes the instance for (e, v).
func (o *OwnedEvents) SetPaused(e ElementID, v EventID, p bool) error {
	inst, err := o.instance(e, v)
	if err != nil {
		return err
	}
	setPaused(inst, v, p)
	return nil
}

// Paused reports whether the instance for (e, v) is paused.
func (o *OwnedEvents) Paused(e ElementID, v EventID) (bool, error) {
	inst, err := o.instance(e, v)
	if err != nil {
		return false, err
	}
	return paused(inst, v)
}

// SetVolume sets the volume of the instance for (e, v).
func (o *OwnedEvents) SetVolume(e ElementID, v EventID, vol float32) error {
	inst, err := o.instance(e, v)
	if err != nil {
		return err
	}
	setVolume(inst, v, vol)
	return nil
}

// Volume returns the volume of the instance for (e, v), or 0 on failure.
func (o *OwnedEvents) Volume(e ElementID, v EventID) (float32, error) {
	inst, err := o.instance(e, v)
	if err != nil {
		return 0, err
	}
	return volume(inst, v)
}

// SetPosition moves the instance for (e, v). Positions with a NaN component
// are rejected before anything else is checked.
func (o *OwnedEvents) SetPosition(e ElementID, v EventID, pos audio.Vector3) error {
	if pos.HasNaN() {
		return ErrInvalidPosition
	}
	inst, err := o.instance(e, v)
	if err != nil {
		return err
	}
	setPosition(inst, v, pos)
	return nil
}

// Position returns the position of the instance for (e, v), or the zero
// vector on failure.
func (o *OwnedEvents) Position(e ElementID, v EventID) (audio.Vector3, error) {
	inst, err := o.instance(e, v)
	if err != nil {
		return audio.Vector3{}, err
	}
	return position(inst, v)
}

// Close retires every held instance. Element roots are kept.
func (o *OwnedEvents) Close() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, events := range o.elements {
		n += events.Clear()
	}
	return n
}

func (o *OwnedEvents) element(e ElementID) (*registry.Registry[EventID], error) {
	if o == nil {
		return nil, ErrNoRoot
	}
	events, ok := o.elements[e]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, e)
	}
	return events, nil
}

func (o *OwnedEvents) instance(e ElementID, v EventID) (audio.Instance, error) {
	events, err := o.element(e)
	if err != nil {
		return nil, err
	}
	inst, ok := events.Lookup(v)
	if !ok {
		return nil, slotNotFound(e, v)
	}
	return inst, nil
}

func slotNotFound(e ElementID, v EventID) error {
	return fmt.Errorf("%w: element %q event %q", ErrSlotNotFound, e, v)
}
