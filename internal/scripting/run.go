package scripting

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/zjrosen/audioreg/internal/log"
)

// NewState returns a Lua state with the standard libraries, the registry
// functions of b and, if host is set, the element lifecycle functions.
func NewState(b Bindings, host bool) *lua.State {
	l := lua.NewState()
	lua.OpenLibraries(l)
	Open(l, b.Functions())
	if host {
		Open(l, b.HostFunctions())
	}
	return l
}

// RunFile executes the script at path in a fresh state.
func RunFile(b Bindings, path string) error {
	l := NewState(b, true)

	log.Debug(log.CatScript, "Running script", "path", path)
	if err := lua.LoadFile(l, path, ""); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// RunString executes src in l.
func RunString(l *lua.State, src string) error {
	if err := lua.DoString(l, src); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}
