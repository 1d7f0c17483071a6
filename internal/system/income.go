package system

import (
	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	coresys "github.com/dustinlacewell/schedule-1/internal/core/system"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// IncomeSystem credits passive income to wallets that declare an income
// rate, at a fixed cadence. Runs every tick; entities without income
// configuration or already at their cap are skipped silently.
type IncomeSystem struct {
	world    *world.World
	interval int // ticks between credits
}

func NewIncomeSystem(w *world.World, interval int) *IncomeSystem {
	if interval <= 0 {
		interval = 10
	}
	return &IncomeSystem{world: w, interval: interval}
}

func (s *IncomeSystem) Phase() coresys.Phase { return coresys.PhaseEconomy }

func (s *IncomeSystem) Update(tick int) {
	s.world.Wallets.Each(func(id ecs.EntityID, wal *component.Wallet) {
		if wal.IncomeRate <= 0 {
			return
		}
		if tick-wal.LastIncomeTick < s.interval {
			return
		}
		if wal.Capped() && wal.Money >= wal.MaxMoney {
			return
		}
		wal.Money += wal.IncomeRate
		if wal.Capped() && wal.Money > wal.MaxMoney {
			wal.Money = wal.MaxMoney
		}
		wal.LastIncomeTick = tick
	})
}
