package system

import (
	coresys "github.com/dustinlacewell/schedule-1/internal/core/system"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// AdvanceTime advances the world clock by ticks, running the per-tick
// systems once per unit of elapsed time, not once for the whole batch.
// It never fails; ticks <= 0 leaves the world untouched.
func AdvanceTime(w *world.World, runner *coresys.Runner, ticks int) {
	for i := 0; i < ticks; i++ {
		w.Tick++
		runner.Tick(w.Tick)
	}
}
