package world

import (
	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
)

// Screen is the coarse navigation state: what the player is looking at.
type Screen string

const (
	ScreenCity     Screen = "city"
	ScreenLocation Screen = "location"
	ScreenNpc      Screen = "npc"
	ScreenTravel   Screen = "travel"
)

// World is the complete mutable game state: one component store per kind
// plus the global cursors. It is owned by exactly one session; systems
// mutate it in place after validating every precondition, so readers between
// transactions never observe a half-applied change.
type World struct {
	pool     *ecs.EntityPool
	registry *ecs.Registry

	Identities   *ecs.Store[component.Identity]
	Positions    *ecs.Store[component.Position]
	Wallets      *ecs.Store[component.Wallet]
	Inventories  *ecs.Store[component.Inventory]
	Sellers      *ecs.Store[component.Seller]
	Buyers       *ecs.Store[component.Buyer]
	Doctors      *ecs.Store[component.Doctor]
	TicketClerks *ecs.Store[component.TicketClerk]
	Locations    *ecs.Store[component.Location]
	Cities       *ecs.Store[component.City]
	Players      *ecs.Store[component.Player]

	Tick     int
	PlayerID ecs.EntityID

	// Navigation cursors. Location and NPC are ecs.None when nothing is in
	// focus at that level.
	CurrentCityID     ecs.EntityID
	CurrentLocationID ecs.EntityID
	CurrentNpcID      ecs.EntityID
	Screen            Screen
}

// New creates an empty world with every component store registered.
func New() *World {
	w := &World{
		pool:         ecs.NewEntityPool(),
		registry:     ecs.NewRegistry(),
		Identities:   ecs.NewStore[component.Identity](),
		Positions:    ecs.NewStore[component.Position](),
		Wallets:      ecs.NewStore[component.Wallet](),
		Inventories:  ecs.NewStore[component.Inventory](),
		Sellers:      ecs.NewStore[component.Seller](),
		Buyers:       ecs.NewStore[component.Buyer](),
		Doctors:      ecs.NewStore[component.Doctor](),
		TicketClerks: ecs.NewStore[component.TicketClerk](),
		Locations:    ecs.NewStore[component.Location](),
		Cities:       ecs.NewStore[component.City](),
		Players:      ecs.NewStore[component.Player](),
		Screen:       ScreenCity,
	}
	w.register()
	return w
}

func (w *World) register() {
	w.registry.Register(component.KindIdentity, w.Identities)
	w.registry.Register(component.KindPosition, w.Positions)
	w.registry.Register(component.KindWallet, w.Wallets)
	w.registry.Register(component.KindInventory, w.Inventories)
	w.registry.Register(component.KindSeller, w.Sellers)
	w.registry.Register(component.KindBuyer, w.Buyers)
	w.registry.Register(component.KindDoctor, w.Doctors)
	w.registry.Register(component.KindTicketClerk, w.TicketClerks)
	w.registry.Register(component.KindLocation, w.Locations)
	w.registry.Register(component.KindCity, w.Cities)
	w.registry.Register(component.KindPlayer, w.Players)
}

// CreateEntity allocates a new entity id.
func (w *World) CreateEntity() ecs.EntityID {
	return w.pool.Create()
}

// EntityCount returns the number of allocated entities.
func (w *World) EntityCount() int {
	return w.pool.Len()
}

// Has reports whether the entity carries the given component kind.
func (w *World) Has(id ecs.EntityID, kind ecs.Kind) bool {
	return w.registry.Has(id, kind)
}

// EntitiesWith returns all entities carrying the kind, sorted.
func (w *World) EntitiesWith(kind ecs.Kind) []ecs.EntityID {
	return w.registry.EntitiesWith(kind)
}

// EntitiesWithAll returns the entities carrying every listed kind, sorted.
// An empty kind list yields an empty result.
func (w *World) EntitiesWithAll(kinds ...ecs.Kind) []ecs.EntityID {
	return w.registry.EntitiesWithAll(kinds...)
}

// PlayerWallet returns the player's wallet, or nil when absent.
func (w *World) PlayerWallet() *component.Wallet {
	wal, _ := w.Wallets.Get(w.PlayerID)
	return wal
}

// PlayerInventory returns the player's inventory, or nil when absent.
func (w *World) PlayerInventory() *component.Inventory {
	inv, _ := w.Inventories.Get(w.PlayerID)
	return inv
}

// Player returns the player component, or nil when absent.
func (w *World) Player() *component.Player {
	p, _ := w.Players.Get(w.PlayerID)
	return p
}
