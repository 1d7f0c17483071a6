package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for economy formula overrides.
// Single-goroutine access only (the session loop). Every hook is optional:
// when the loaded scripts don't define it, the caller falls back to the
// built-in arithmetic, so a nil *Engine is always a valid "no scripts"
// engine.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is not an error; it just leaves every hook
// undefined.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Close shuts down the VM.
func (e *Engine) Close() {
	if e != nil {
		e.vm.Close()
	}
}

// PriceContext holds pre-packed data for a sell-price calculation.
type PriceContext struct {
	BasePrice  int
	Modifier   float64 // buyer price modifier
	Preference float64 // category multiplier, 1.0 when neutral
}

// SellPrice calls the Lua sell_price(base, modifier, preference) hook.
// Returns ok=false when the hook is not defined or fails; the caller then
// uses the built-in formula.
func (e *Engine) SellPrice(ctx PriceContext) (int, bool) {
	if e == nil {
		return 0, false
	}
	fn := e.vm.GetGlobal("sell_price")
	if fn == lua.LNil {
		return 0, false
	}
	err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(ctx.BasePrice), lua.LNumber(ctx.Modifier), lua.LNumber(ctx.Preference))
	if err != nil {
		e.log.Warn("sell_price hook failed", zap.Error(err))
		return 0, false
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		e.log.Warn("sell_price hook returned non-number")
		return 0, false
	}
	return int(n), true
}
