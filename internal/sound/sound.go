// Package sound keeps the registries that tie audio event instances to
// world elements (owned events) or to nothing at all (ownerless events), and
// forwards playback control to the instances they hold.
//
// All types here are single-threaded: the host must serialize calls, for
// example by only calling from the scripting engine's execution context.
package sound

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
)

const tracerName = "github.com/zjrosen/audioreg/internal/sound"

// ElementID names a world element that can own event instances.
type ElementID string

// EventID names an authored event; it doubles as the engine lookup path.
type EventID string

// Option configures a registry.
type Option func(*core)

// WithTracer sets the tracer used for load and release spans.
// Defaults to the global tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *core) {
		c.tracer = tracer
	}
}

// core is the engine access shared by owned and ownerless registries.
type core struct {
	engine audio.Engine
	tracer trace.Tracer
}

func newCore(engine audio.Engine, opts []Option) core {
	c := core{engine: engine}
	for _, opt := range opts {
		opt(&c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// startSpan opens a span for a registry operation.
func (c core) startSpan(name string, attrs ...attribute.KeyValue) trace.Span {
	_, span := c.tracer.Start(context.Background(), name, trace.WithAttributes(attrs...))
	return span
}

// endSpan records err (if any) and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// instantiate resolves event and creates a fresh instance of it.
func (c core) instantiate(event EventID) (audio.Instance, error) {
	desc, err := c.engine.Event(string(event))
	if err != nil {
		return nil, &EngineError{Op: "resolve", Event: event, Err: err}
	}
	inst, err := desc.CreateInstance()
	if err != nil {
		return nil, &EngineError{Op: "instantiate", Event: event, Err: err}
	}
	if inst == nil {
		return nil, &EngineError{Op: "instantiate", Event: event, Err: audio.ErrInvalidHandle}
	}
	return inst, nil
}

// discard releases an instance that never made it into a registry.
func discard(inst audio.Instance, event EventID) {
	if err := inst.Release(); err != nil {
		log.Warn(log.CatSound, "Releasing unattached instance failed", "event", event, "error", err)
	}
}

// ignored logs a failed setter call. Setters report success once the
// instance was found, whatever the engine says.
func ignored(op string, event EventID, err error) {
	if err != nil {
		log.Warn(log.CatSound, "Engine call failed", "op", op, "event", event, "error", err)
	}
}

func stopMode(immediate bool) audio.StopMode {
	if immediate {
		return audio.StopImmediate
	}
	return audio.StopAllowFadeout
}

func play(inst audio.Instance, event EventID) {
	ignored("start", event, inst.Start())
}

func stop(inst audio.Instance, event EventID, immediate bool) {
	ignored("stop", event, inst.Stop(stopMode(immediate)))
}

func setPaused(inst audio.Instance, event EventID, paused bool) {
	ignored("set paused", event, inst.SetPaused(paused))
}

func setVolume(inst audio.Instance, event EventID, volume float32) {
	ignored("set volume", event, inst.SetVolume(volume))
}

// setPosition sends a zeroed attribute block carrying only the position.
func setPosition(inst audio.Instance, event EventID, pos audio.Vector3) {
	ignored("set 3d attributes", event, inst.Set3DAttributes(audio.Attributes3D{Position: pos}))
}

func paused(inst audio.Instance, event EventID) (bool, error) {
	p, err := inst.Paused()
	if err != nil {
		return false, &EngineError{Op: "get paused", Event: event, Err: err}
	}
	return p, nil
}

func volume(inst audio.Instance, event EventID) (float32, error) {
	v, err := inst.Volume()
	if err != nil {
		return 0, &EngineError{Op: "get volume", Event: event, Err: err}
	}
	return v, nil
}

func position(inst audio.Instance, event EventID) (audio.Vector3, error) {
	attrs, err := inst.Get3DAttributes()
	if err != nil {
		return audio.Vector3{}, &EngineError{Op: "get 3d attributes", Event: event, Err: err}
	}
	return attrs.Position, nil
}

func sortedEvents(events []EventID) []EventID {
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// Context is the registry root: one owned and one ownerless registry over a
// shared engine. Construct it at startup and pass it to whatever needs it.
type Context struct {
	Owned     *OwnedEvents
	Ownerless *OwnerlessEvents
}

// NewContext creates both registries over engine.
func NewContext(engine audio.Engine, opts ...Option) *Context {
	return &Context{
		Owned:     NewOwnedEvents(engine, opts...),
		Ownerless: NewOwnerlessEvents(engine, opts...),
	}
}

// Close retires every held instance and returns how many there were.
// The context stays usable afterwards; element roots are kept.
func (c *Context) Close() int {
	if c == nil {
		return 0
	}
	n := c.Owned.Close() + c.Ownerless.Close()
	log.Debug(log.CatSound, "Sound context closed", "retired", n)
	return n
}
