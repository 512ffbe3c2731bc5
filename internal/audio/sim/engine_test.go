package sim

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/audioreg/internal/audio"
)

const testBank = `
name: test
events:
  - path: explosion
    is_3d: true
    length: 2s
    fadeout: 250ms
  - path: click
    length: 80ms
`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	bank, err := ParseBank([]byte(testBank))
	require.NoError(t, err)
	return NewEngine(bank)
}

func TestParseBank(t *testing.T) {
	bank, err := ParseBank([]byte(testBank))
	require.NoError(t, err)
	require.Equal(t, "test", bank.Name)
	require.Len(t, bank.Events, 2)
	require.Equal(t, EventInfo{Path: "explosion", Is3D: true, Length: 2 * time.Second, Fadeout: 250 * time.Millisecond}, bank.Events[0])
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed yaml", "events: [", "parsing bank"},
		{"missing path", "events:\n  - is_3d: true\n", "path is required"},
		{"duplicate path", "events:\n  - path: a\n  - path: a\n", "duplicate path"},
		{"negative fadeout", "events:\n  - path: a\n    fadeout: -1s\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.data))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadBankFS(t *testing.T) {
	fsys := fstest.MapFS{"banks/game.yaml": {Data: []byte(testBank)}}

	bank, err := LoadBankFS(fsys, "banks/game.yaml")
	require.NoError(t, err)
	require.Equal(t, "test", bank.Name)

	_, err = LoadBankFS(fsys, "banks/missing.yaml")
	require.Error(t, err)
}

func TestDefaultBank(t *testing.T) {
	bank, err := LoadBankFile("")
	require.NoError(t, err)
	require.Equal(t, "default", bank.Name)

	engine := NewEngine(bank)
	for _, path := range []string{"explosion", "ambient_wind"} {
		_, err := engine.Event(path)
		require.NoError(t, err, path)
	}
}

func TestEngine_EventNotFound(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Event("nope")
	require.True(t, errors.Is(err, audio.ErrEventNotFound))
}

func TestEngine_EventsSorted(t *testing.T) {
	engine := newTestEngine(t)

	events := engine.Events()
	require.Len(t, events, 2)
	require.Equal(t, "click", events[0].Path)
	require.Equal(t, "explosion", events[1].Path)
}

func TestInstance_Lifecycle(t *testing.T) {
	engine := newTestEngine(t)
	desc, err := engine.Event("explosion")
	require.NoError(t, err)

	handle, err := desc.CreateInstance()
	require.NoError(t, err)
	inst := handle.(*Instance)

	require.NoError(t, inst.Start())
	require.NoError(t, inst.SetVolume(0.25))
	require.NoError(t, inst.SetPaused(true))
	require.NoError(t, inst.Set3DAttributes(audio.Attributes3D{Position: audio.Vector3{X: 1, Y: 2, Z: 3}}))

	snap := inst.Snapshot()
	require.Equal(t, StatePlaying, snap.State)
	require.Equal(t, float32(0.25), snap.Volume)
	require.True(t, snap.Paused)
	require.Equal(t, audio.Vector3{X: 1, Y: 2, Z: 3}, snap.Attrs.Position)
	require.Equal(t, 1, engine.LiveCount())

	require.NoError(t, inst.Stop(audio.StopAllowFadeout))
	require.Equal(t, StateStopping, inst.Snapshot().State)

	require.NoError(t, inst.Stop(audio.StopImmediate))
	require.NoError(t, inst.Release())
	require.Zero(t, engine.LiveCount())

	snap = inst.Snapshot()
	require.Equal(t, StateStopped, snap.State)
	require.Equal(t, 1, snap.FadeoutStops)
	require.Equal(t, 1, snap.ImmediateStops)
	require.Equal(t, 1, snap.Releases)
	require.True(t, snap.Released)
}

func TestInstance_FadeoutWithoutAuthoredFadeStopsAtOnce(t *testing.T) {
	engine := newTestEngine(t)
	desc, err := engine.Event("click")
	require.NoError(t, err)
	inst, err := desc.CreateInstance()
	require.NoError(t, err)

	require.NoError(t, inst.Start())
	require.NoError(t, inst.Stop(audio.StopAllowFadeout))
	require.Equal(t, StateStopped, inst.(*Instance).Snapshot().State)
}

func TestInstance_ReleasedHandleIsInvalid(t *testing.T) {
	engine := newTestEngine(t)
	desc, err := engine.Event("click")
	require.NoError(t, err)
	inst, err := desc.CreateInstance()
	require.NoError(t, err)
	require.NoError(t, inst.Release())

	require.ErrorIs(t, inst.Start(), audio.ErrInvalidHandle)
	require.ErrorIs(t, inst.Release(), audio.ErrInvalidHandle)
	_, err = inst.Volume()
	require.ErrorIs(t, err, audio.ErrInvalidHandle)
	_, err = inst.Get3DAttributes()
	require.ErrorIs(t, err, audio.ErrInvalidHandle)
}

func TestEngine_ReloadKeepsLiveInstances(t *testing.T) {
	engine := newTestEngine(t)
	desc, err := engine.Event("explosion")
	require.NoError(t, err)
	inst, err := desc.CreateInstance()
	require.NoError(t, err)

	engine.Reload(&Bank{Name: "empty"})

	_, err = engine.Event("explosion")
	require.ErrorIs(t, err, audio.ErrEventNotFound)
	require.NoError(t, inst.Start())
	require.Len(t, engine.Instances(), 1)
}
