package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Shopify/go-lua"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/audioreg/internal/audio/sim"
	"github.com/zjrosen/audioreg/internal/sound"
)

func newTestContext(t *testing.T) (*sound.Context, *sim.Engine) {
	t.Helper()
	bank, err := sim.DefaultBank()
	require.NoError(t, err)
	engine := sim.NewEngine(bank)
	return sound.NewContext(engine), engine
}

// run executes src and returns the state for inspecting globals.
func run(t *testing.T, b Bindings, src string) *lua.State {
	t.Helper()
	l := NewState(b, true)
	require.NoError(t, RunString(l, src))
	return l
}

func globalBool(t *testing.T, l *lua.State, name string) bool {
	t.Helper()
	l.Global(name)
	defer l.Pop(1)
	require.Equal(t, lua.TypeBoolean, l.TypeOf(-1), "global %s", name)
	return l.ToBoolean(-1)
}

func globalNumber(t *testing.T, l *lua.State, name string) float64 {
	t.Helper()
	l.Global(name)
	defer l.Pop(1)
	n, ok := l.ToNumber(-1)
	require.True(t, ok, "global %s is not a number", name)
	return n
}

func TestOwnedScenario_LoadPlayReleasePlay(t *testing.T) {
	ctx, engine := newTestContext(t)
	_, err := ctx.Owned.AddElement("npc1")
	require.NoError(t, err)

	l := run(t, NewBindings(ctx), `
		loaded   = loadFmodEventForElement("npc1", "explosion")
		played   = playFmodEventForElement("npc1", "explosion")
		released = releaseEventInstanceForElement("npc1", "explosion")
		replayed = playFmodEventForElement("npc1", "explosion")
	`)

	require.True(t, globalBool(t, l, "loaded"))
	require.True(t, globalBool(t, l, "played"))
	require.True(t, globalBool(t, l, "released"))
	require.False(t, globalBool(t, l, "replayed"))
	require.Zero(t, engine.LiveCount())
}

func TestOwnedScenario_VolumeBeforeLoad(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := ctx.Owned.AddElement("npc1")
	require.NoError(t, err)

	l := run(t, NewBindings(ctx), `
		set = setFmodEventVolume("npc1", "explosion", 0.5)
		vol = getFmodEventVolume("npc1", "explosion")
	`)

	require.False(t, globalBool(t, l, "set"))
	require.Zero(t, globalNumber(t, l, "vol"))
}

func TestOwnerlessScenario_LoadStopWithoutRoot(t *testing.T) {
	bank, err := sim.DefaultBank()
	require.NoError(t, err)
	b := Bindings{Ownerless: sound.NewOwnerlessEvents(sim.NewEngine(bank))}

	l := run(t, b, `
		loaded  = loadFmodEvent("ambient_wind")
		stopped = stopFmodEvent("ambient_wind")
		owned   = loadFmodEventForElement("npc1", "explosion")
	`)

	require.True(t, globalBool(t, l, "loaded"))
	require.True(t, globalBool(t, l, "stopped"))
	require.False(t, globalBool(t, l, "owned"), "owned calls fail without a registry root")
}

func TestOwned_PositionRoundTripAndNaN(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := ctx.Owned.AddElement("car")
	require.NoError(t, err)

	l := run(t, NewBindings(ctx), `
		loadFmodEventForElement("car", "engine_loop")
		ok     = setFmodEventForElement3DPosition("car", "engine_loop", 1, 2, 3)
		nanOk  = setFmodEventForElement3DPosition("car", "engine_loop", 0/0, 0, 0)
		x, y, z = getFmodEventForElement3DPosition("car", "engine_loop")
		mx, my, mz = getFmodEventForElement3DPosition("car", "missing")
	`)

	require.True(t, globalBool(t, l, "ok"))
	require.False(t, globalBool(t, l, "nanOk"))
	require.Equal(t, 1.0, globalNumber(t, l, "x"))
	require.Equal(t, 2.0, globalNumber(t, l, "y"))
	require.Equal(t, 3.0, globalNumber(t, l, "z"))
	for _, name := range []string{"mx", "my", "mz"} {
		require.Zero(t, globalNumber(t, l, name))
	}
}

func TestOwned_PauseAndStopModes(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := ctx.Owned.AddElement("car")
	require.NoError(t, err)

	l := run(t, NewBindings(ctx), `
		loadFmodEventForElement("car", "engine_loop")
		playFmodEventForElement("car", "engine_loop")
		setPauseFmodEventForElement("car", "engine_loop", true)
		paused = getPauseFmodEventForElement("car", "engine_loop")
		faded  = stopFmodEventForElement("car", "engine_loop", false)
	`)

	require.True(t, globalBool(t, l, "paused"))
	require.True(t, globalBool(t, l, "faded"))

	inst, ok := ctx.Owned.Lookup("car", "engine_loop")
	require.True(t, ok)
	snap := inst.(*sim.Instance).Snapshot()
	require.Equal(t, sim.StateStopping, snap.State)
	require.Equal(t, 1, snap.FadeoutStops)
}

func TestOwnerless_FullSurface(t *testing.T) {
	ctx, engine := newTestContext(t)

	l := run(t, NewBindings(ctx), `
		loadFmodEvent("ambient_wind")
		played  = playFmodEvent("ambient_wind")
		volSet  = setVolumeFmodEvent("ambient_wind", 0.25)
		vol     = getVolumeFmodEvent("ambient_wind")
		setPauseFmodEvent("ambient_wind", true)
		paused  = getPauseFmodEvent("ambient_wind")
		posSet  = setPosFmodEvent("ambient_wind", 4, 5, 6)
		nanSet  = setPosFmodEvent("ambient_wind", 0, 0/0, 0)
		x, y, z = getPosFmodEvent("ambient_wind")
		faded   = stopFmodEvent("ambient_wind", false)
		released = releaseFmodEvent("ambient_wind")
		again    = releaseFmodEvent("ambient_wind")
	`)

	require.True(t, globalBool(t, l, "played"))
	require.True(t, globalBool(t, l, "volSet"))
	require.InDelta(t, 0.25, globalNumber(t, l, "vol"), 1e-6)
	require.True(t, globalBool(t, l, "paused"))
	require.True(t, globalBool(t, l, "posSet"))
	require.False(t, globalBool(t, l, "nanSet"))
	require.Equal(t, 4.0, globalNumber(t, l, "x"))
	require.Equal(t, 5.0, globalNumber(t, l, "y"))
	require.Equal(t, 6.0, globalNumber(t, l, "z"))
	require.True(t, globalBool(t, l, "faded"))
	require.True(t, globalBool(t, l, "released"))
	require.False(t, globalBool(t, l, "again"))
	require.Zero(t, engine.LiveCount())

	snap := engine.Instances()[0]
	require.Equal(t, 1, snap.FadeoutStops)
	require.Equal(t, 1, snap.ImmediateStops, "only the release stops immediately")
}

func TestNilBindingsFailEverything(t *testing.T) {
	l := run(t, NewBindings(nil), `
		a = loadFmodEvent("ambient_wind")
		b = playFmodEventForElement("npc1", "explosion")
		c = createElement("npc1")
		v = getFmodEventVolume("npc1", "explosion")
		p = getPauseFmodEvent("ambient_wind")
	`)

	for _, name := range []string{"a", "b", "c", "p"} {
		require.False(t, globalBool(t, l, name), name)
	}
	require.Zero(t, globalNumber(t, l, "v"))
}

func TestHostFunctions_ElementLifecycle(t *testing.T) {
	ctx, engine := newTestContext(t)

	l := run(t, NewBindings(ctx), `
		beforeCreate = loadFmodEventForElement("npc1", "footstep")
		created      = createElement("npc1")
		loaded       = loadFmodEventForElement("npc1", "footstep")
		destroyed    = destroyElement("npc1")
		destroyedTwice = destroyElement("npc1")
		afterDestroy = playFmodEventForElement("npc1", "footstep")
	`)

	require.False(t, globalBool(t, l, "beforeCreate"))
	require.True(t, globalBool(t, l, "created"))
	require.True(t, globalBool(t, l, "loaded"))
	require.True(t, globalBool(t, l, "destroyed"))
	require.False(t, globalBool(t, l, "destroyedTwice"))
	require.False(t, globalBool(t, l, "afterDestroy"))
	require.Zero(t, engine.LiveCount())
}

func TestBadArgumentsRaise(t *testing.T) {
	ctx, _ := newTestContext(t)
	l := NewState(NewBindings(ctx), false)

	require.Error(t, RunString(l, `loadFmodEvent({})`))
	require.Error(t, RunString(l, `setPosFmodEvent("ambient_wind", 1, 2)`))
}

func TestHostFunctionsAreOptional(t *testing.T) {
	ctx, _ := newTestContext(t)
	l := NewState(NewBindings(ctx), false)

	require.Error(t, RunString(l, `createElement("npc1")`))
}

func TestRunFile(t *testing.T) {
	ctx, engine := newTestContext(t)
	path := filepath.Join(t.TempDir(), "main.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		createElement("npc1")
		assert(loadFmodEventForElement("npc1", "explosion"))
		assert(playFmodEventForElement("npc1", "explosion"))
	`), 0644))

	require.NoError(t, RunFile(NewBindings(ctx), path))
	require.Equal(t, 1, engine.LiveCount())
	require.Equal(t, []sound.OwnedSlot{{Element: "npc1", Event: "explosion"}}, ctx.Owned.Slots())
}

func TestRunFile_Errors(t *testing.T) {
	ctx, _ := newTestContext(t)
	dir := t.TempDir()

	require.ErrorContains(t, RunFile(NewBindings(ctx), filepath.Join(dir, "missing.lua")), "load lua")

	bad := filepath.Join(dir, "bad.lua")
	require.NoError(t, os.WriteFile(bad, []byte(`error("boom")`), 0644))
	require.ErrorContains(t, RunFile(NewBindings(ctx), bad), "run lua")
}
