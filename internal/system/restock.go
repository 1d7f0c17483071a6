package system

import (
	coresys "github.com/dustinlacewell/schedule-1/internal/core/system"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// RestockSystem is where seller restocking will run. Sellers declare a
// restock rate but no replenishment formula is defined yet, so the system
// intentionally changes nothing. It stays registered so the eventual
// implementation slots into the tick order without rewiring.
type RestockSystem struct {
	world *world.World
}

func NewRestockSystem(w *world.World) *RestockSystem {
	return &RestockSystem{world: w}
}

func (s *RestockSystem) Phase() coresys.Phase { return coresys.PhaseRestock }

func (s *RestockSystem) Update(tick int) {}
