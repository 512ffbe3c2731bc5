package registry

import (
	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
)

// Handle owns one event instance. Retiring the handle stops the instance
// immediately and releases it, exactly once.
type Handle struct {
	inst    audio.Instance
	retired bool
}

// NewHandle takes ownership of inst.
func NewHandle(inst audio.Instance) *Handle {
	return &Handle{inst: inst}
}

// Instance returns the owned instance.
func (h *Handle) Instance() audio.Instance {
	return h.inst
}

// Retired reports whether Retire has run.
func (h *Handle) Retired() bool {
	return h.retired
}

// Retire stops the instance immediately and releases it. Engine errors are
// logged and otherwise ignored: the handle counts as retired either way, and
// later calls do nothing.
func (h *Handle) Retire() {
	if h.retired {
		return
	}
	h.retired = true

	if err := h.inst.Stop(audio.StopImmediate); err != nil {
		log.Warn(log.CatSound, "Stopping retired instance failed", "error", err)
	}
	if err := h.inst.Release(); err != nil {
		log.Warn(log.CatSound, "Releasing retired instance failed", "error", err)
	}
}
