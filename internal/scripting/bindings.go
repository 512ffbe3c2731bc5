// Package scripting exposes the sound registries to Lua scripts.
//
// Every registry operation becomes one global function taking plain strings,
// numbers and booleans. Registry failures never raise Lua errors: callers see
// false, 0 or a zero vector. Only malformed arguments (a table where a string
// is expected, say) raise, as the Lua auxiliary checks do.
package scripting

import (
	"github.com/Shopify/go-lua"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/log"
	"github.com/zjrosen/audioreg/internal/sound"
)

// Bindings holds the registries scripts operate on. Either field may be nil,
// in which case its functions fail like a missing registry root.
type Bindings struct {
	Owned     *sound.OwnedEvents
	Ownerless *sound.OwnerlessEvents
}

// NewBindings binds both registries of ctx. A nil ctx yields bindings whose
// every call fails.
func NewBindings(ctx *sound.Context) Bindings {
	if ctx == nil {
		return Bindings{}
	}
	return Bindings{Owned: ctx.Owned, Ownerless: ctx.Ownerless}
}

// Functions returns the registry functions keyed by their Lua global names.
func (b Bindings) Functions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		// owned
		{Name: "loadFmodEventForElement", Function: b.loadOwned},
		{Name: "releaseEventInstanceForElement", Function: b.releaseOwned},
		{Name: "playFmodEventForElement", Function: b.playOwned},
		{Name: "stopFmodEventForElement", Function: b.stopOwned},
		{Name: "setPauseFmodEventForElement", Function: b.setPauseOwned},
		{Name: "getPauseFmodEventForElement", Function: b.getPauseOwned},
		{Name: "setFmodEventForElement3DPosition", Function: b.setPosOwned},
		{Name: "getFmodEventForElement3DPosition", Function: b.getPosOwned},
		{Name: "setFmodEventVolume", Function: b.setVolumeOwned},
		{Name: "getFmodEventVolume", Function: b.getVolumeOwned},

		// ownerless
		{Name: "loadFmodEvent", Function: b.loadOwnerless},
		{Name: "releaseFmodEvent", Function: b.releaseOwnerless},
		{Name: "playFmodEvent", Function: b.playOwnerless},
		{Name: "stopFmodEvent", Function: b.stopOwnerless},
		{Name: "setPauseFmodEvent", Function: b.setPauseOwnerless},
		{Name: "getPauseFmodEvent", Function: b.getPauseOwnerless},
		{Name: "setPosFmodEvent", Function: b.setPosOwnerless},
		{Name: "getPosFmodEvent", Function: b.getPosOwnerless},
		{Name: "setVolumeFmodEvent", Function: b.setVolumeOwnerless},
		{Name: "getVolumeFmodEvent", Function: b.getVolumeOwnerless},
	}
}

// HostFunctions returns element lifecycle functions. A real host creates and
// destroys element roots itself; the CLI lets scripts do it.
func (b Bindings) HostFunctions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "createElement", Function: b.createElement},
		{Name: "destroyElement", Function: b.destroyElement},
	}
}

// Open registers fns as globals of l.
func Open(l *lua.State, fns []lua.RegistryFunction) {
	l.PushGlobalTable()
	lua.SetFunctions(l, fns, 0)
	l.Pop(1)
}

func checkOwned(l *lua.State) (sound.ElementID, sound.EventID) {
	return sound.ElementID(lua.CheckString(l, 1)), sound.EventID(lua.CheckString(l, 2))
}

func checkVector(l *lua.State, first int) audio.Vector3 {
	return audio.Vector3{
		X: float32(lua.CheckNumber(l, first)),
		Y: float32(lua.CheckNumber(l, first+1)),
		Z: float32(lua.CheckNumber(l, first+2)),
	}
}

// failed logs err (if any) and reports whether the call failed.
func failed(fn string, err error) bool {
	if err != nil {
		log.Debug(log.CatScript, "Script call failed", "fn", fn, "error", err)
		return true
	}
	return false
}

func pushResult(l *lua.State, fn string, err error) int {
	l.PushBoolean(!failed(fn, err))
	return 1
}

func pushVector(l *lua.State, v audio.Vector3) int {
	l.PushNumber(float64(v.X))
	l.PushNumber(float64(v.Y))
	l.PushNumber(float64(v.Z))
	return 3
}

func (b Bindings) loadOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "loadFmodEventForElement", b.Owned.Load(e, v))
}

func (b Bindings) releaseOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "releaseEventInstanceForElement", b.Owned.Release(e, v))
}

func (b Bindings) playOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "playFmodEventForElement", b.Owned.Play(e, v))
}

func (b Bindings) stopOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "stopFmodEventForElement", b.Owned.Stop(e, v, l.ToBoolean(3)))
}

func (b Bindings) setPauseOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "setPauseFmodEventForElement", b.Owned.SetPaused(e, v, l.ToBoolean(3)))
}

func (b Bindings) getPauseOwned(l *lua.State) int {
	e, v := checkOwned(l)
	paused, err := b.Owned.Paused(e, v)
	failed("getPauseFmodEventForElement", err)
	l.PushBoolean(paused)
	return 1
}

func (b Bindings) setPosOwned(l *lua.State) int {
	e, v := checkOwned(l)
	return pushResult(l, "setFmodEventForElement3DPosition", b.Owned.SetPosition(e, v, checkVector(l, 3)))
}

func (b Bindings) getPosOwned(l *lua.State) int {
	e, v := checkOwned(l)
	pos, err := b.Owned.Position(e, v)
	failed("getFmodEventForElement3DPosition", err)
	return pushVector(l, pos)
}

func (b Bindings) setVolumeOwned(l *lua.State) int {
	e, v := checkOwned(l)
	vol := float32(lua.CheckNumber(l, 3))
	return pushResult(l, "setFmodEventVolume", b.Owned.SetVolume(e, v, vol))
}

func (b Bindings) getVolumeOwned(l *lua.State) int {
	e, v := checkOwned(l)
	vol, err := b.Owned.Volume(e, v)
	failed("getFmodEventVolume", err)
	l.PushNumber(float64(vol))
	return 1
}

func (b Bindings) loadOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	return pushResult(l, "loadFmodEvent", b.Ownerless.Load(v))
}

func (b Bindings) releaseOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	return pushResult(l, "releaseFmodEvent", b.Ownerless.Release(v))
}

func (b Bindings) playOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	return pushResult(l, "playFmodEvent", b.Ownerless.Play(v))
}

// stopOwnerless stops immediately unless a false second argument asks for
// the authored fade-out.
func (b Bindings) stopOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	immediate := l.IsNoneOrNil(2) || l.ToBoolean(2)
	return pushResult(l, "stopFmodEvent", b.Ownerless.Stop(v, immediate))
}

func (b Bindings) setPauseOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	return pushResult(l, "setPauseFmodEvent", b.Ownerless.SetPaused(v, l.ToBoolean(2)))
}

func (b Bindings) getPauseOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	paused, err := b.Ownerless.Paused(v)
	failed("getPauseFmodEvent", err)
	l.PushBoolean(paused)
	return 1
}

func (b Bindings) setPosOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	return pushResult(l, "setPosFmodEvent", b.Ownerless.SetPosition(v, checkVector(l, 2)))
}

func (b Bindings) getPosOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	pos, err := b.Ownerless.Position(v)
	failed("getPosFmodEvent", err)
	return pushVector(l, pos)
}

func (b Bindings) setVolumeOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	vol := float32(lua.CheckNumber(l, 2))
	return pushResult(l, "setVolumeFmodEvent", b.Ownerless.SetVolume(v, vol))
}

func (b Bindings) getVolumeOwnerless(l *lua.State) int {
	v := sound.EventID(lua.CheckString(l, 1))
	vol, err := b.Ownerless.Volume(v)
	failed("getVolumeFmodEvent", err)
	l.PushNumber(float64(vol))
	return 1
}

func (b Bindings) createElement(l *lua.State) int {
	e := sound.ElementID(lua.CheckString(l, 1))
	_, err := b.Owned.AddElement(e)
	return pushResult(l, "createElement", err)
}

func (b Bindings) destroyElement(l *lua.State) int {
	e := sound.ElementID(lua.CheckString(l, 1))
	_, err := b.Owned.RemoveElement(e)
	return pushResult(l, "destroyElement", err)
}
