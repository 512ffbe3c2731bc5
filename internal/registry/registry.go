// Package registry tracks live event instances by key.
//
// A Registry holds at most one instance per key. Replacing or removing an
// entry retires the instance it held, so engine-side resources are never
// leaked by overwriting a slot.
//
// Registries do no locking; callers serialize access.
package registry

import (
	"errors"
	"reflect"

	"github.com/zjrosen/audioreg/internal/audio"
)

// ErrNilInstance is returned when attaching a nil instance.
var ErrNilInstance = errors.New("nil event instance")

// Registry maps keys to owned event instances.
type Registry[K comparable] struct {
	slots map[K]*Handle
}

// New creates an empty registry.
func New[K comparable]() *Registry[K] {
	return &Registry[K]{slots: make(map[K]*Handle)}
}

// Attach stores inst under key. A different instance already stored under
// key is retired first; attaching the instance a slot already holds is a no-op.
func (r *Registry[K]) Attach(key K, inst audio.Instance) error {
	if inst == nil {
		return ErrNilInstance
	}
	if old, ok := r.slots[key]; ok {
		if sameInstance(old.Instance(), inst) {
			return nil
		}
		old.Retire()
	}
	r.slots[key] = NewHandle(inst)
	return nil
}

// Lookup returns the instance stored under key.
func (r *Registry[K]) Lookup(key K) (audio.Instance, bool) {
	h, ok := r.slots[key]
	if !ok {
		return nil, false
	}
	return h.Instance(), true
}

// Release retires the instance under key and removes the slot. It reports
// false if there was no such slot.
func (r *Registry[K]) Release(key K) bool {
	h, ok := r.slots[key]
	if !ok {
		return false
	}
	delete(r.slots, key)
	h.Retire()
	return true
}

// Len returns the number of occupied slots.
func (r *Registry[K]) Len() int {
	return len(r.slots)
}

// Keys returns the occupied keys in no particular order.
func (r *Registry[K]) Keys() []K {
	keys := make([]K, 0, len(r.slots))
	for k := range r.slots {
		keys = append(keys, k)
	}
	return keys
}

// Clear retires every instance and empties the registry. It returns the
// number of slots that were retired.
func (r *Registry[K]) Clear() int {
	n := len(r.slots)
	for k, h := range r.slots {
		delete(r.slots, k)
		h.Retire()
	}
	return n
}

// sameInstance reports whether a and b are the same instance. Values of a
// non-comparable type are never the same; comparing them with == would panic.
func sameInstance(a, b audio.Instance) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
