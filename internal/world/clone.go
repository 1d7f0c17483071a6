package world

import (
	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
)

func shallow[T any](c T) T { return c }

// Clone deep-copies the world: every component table, the entity pool, and
// all cursors. Supports snapshot/replay and equality-based no-op testing.
func (w *World) Clone() *World {
	out := &World{
		pool:         w.pool.Clone(),
		registry:     ecs.NewRegistry(),
		Identities:   w.Identities.Clone(shallow[component.Identity]),
		Positions:    w.Positions.Clone(shallow[component.Position]),
		Wallets:      w.Wallets.Clone(shallow[component.Wallet]),
		Inventories:  w.Inventories.Clone(component.CloneInventory),
		Sellers:      w.Sellers.Clone(shallow[component.Seller]),
		Buyers:       w.Buyers.Clone(component.CloneBuyer),
		Doctors:      w.Doctors.Clone(shallow[component.Doctor]),
		TicketClerks: w.TicketClerks.Clone(component.CloneTicketClerk),
		Locations:    w.Locations.Clone(shallow[component.Location]),
		Cities:       w.Cities.Clone(shallow[component.City]),
		Players:      w.Players.Clone(shallow[component.Player]),

		Tick:              w.Tick,
		PlayerID:          w.PlayerID,
		CurrentCityID:     w.CurrentCityID,
		CurrentLocationID: w.CurrentLocationID,
		CurrentNpcID:      w.CurrentNpcID,
		Screen:            w.Screen,
	}
	out.register()
	return out
}
