// Package sim provides an in-memory audio engine that honors the audio
// facade contract without producing sound. The CLI runs scripts against it
// and tests use it to observe what the registry did to each instance.
package sim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
)

// Engine is a simulated audio engine backed by a bank manifest.
// It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	bankName  string
	events    map[string]*Description
	instances []*Instance
}

// NewEngine creates an engine serving the events of bank.
func NewEngine(bank *Bank) *Engine {
	e := &Engine{}
	e.Reload(bank)
	return e
}

// Reload replaces the served events. Instances created from the previous
// bank keep working with their original description.
func (e *Engine) Reload(bank *Bank) {
	events := make(map[string]*Description, len(bank.Events))
	for _, info := range bank.Events {
		events[info.Path] = &Description{engine: e, info: info}
	}

	e.mu.Lock()
	e.bankName = bank.Name
	e.events = events
	e.mu.Unlock()

	log.Info(log.CatEngine, "Bank loaded", "bank", bank.Name, "events", len(events))
}

// Event implements audio.Engine.
func (e *Engine) Event(path string) (audio.Description, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, ok := e.events[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q in bank %q", audio.ErrEventNotFound, path, e.bankName)
	}
	return d, nil
}

// Events lists the served events ordered by path.
func (e *Engine) Events() []EventInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]EventInfo, 0, len(e.events))
	for _, d := range e.events {
		out = append(out, d.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Instances returns snapshots of every instance ever created, in creation order.
func (e *Engine) Instances() []Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Snapshot, len(e.instances))
	for i, inst := range e.instances {
		out[i] = inst.snapshotLocked()
	}
	return out
}

// LiveCount returns the number of instances not yet released.
func (e *Engine) LiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, inst := range e.instances {
		if !inst.released {
			n++
		}
	}
	return n
}

// Description is a simulated event description.
type Description struct {
	engine *Engine
	info   EventInfo
}

// Path implements audio.Description.
func (d *Description) Path() string { return d.info.Path }

// Info returns the manifest entry for the description.
func (d *Description) Info() EventInfo { return d.info }

// CreateInstance implements audio.Description.
func (d *Description) CreateInstance() (audio.Instance, error) {
	inst := &Instance{
		engine: d.engine,
		id:     uuid.NewString(),
		desc:   d,
		state:  StateStopped,
		volume: 1,
	}

	d.engine.mu.Lock()
	d.engine.instances = append(d.engine.instances, inst)
	d.engine.mu.Unlock()

	log.Debug(log.CatEngine, "Instance created", "event", d.info.Path, "instance", inst.id)
	return inst, nil
}
