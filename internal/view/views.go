package view

import (
	"fmt"

	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// Read-only projections over the world for presentation. Everything here is
// a snapshot assembled between transactions; nothing holds references into
// the component tables.

type CityView struct {
	ID            ecs.EntityID
	Name          string
	Description   string
	PriceModifier float64
}

type LocationView struct {
	ID          ecs.EntityID
	Name        string
	Description string
	Type        string
	NpcCount    int
}

type StockLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice int
}

type NpcView struct {
	ID          ecs.EntityID
	Name        string
	Catchphrase string
	HasWallet   bool
	Money       int
	IsSeller    bool
	IsBuyer     bool
	IsDoctor    bool
	IsClerk     bool
	Stock       []StockLine
}

type PlayerView struct {
	Name      string
	Money     int
	Health    int
	MaxHealth int
	Items     []StockLine
}

type TravelOption struct {
	ClerkID ecs.EntityID
	CityID  ecs.EntityID
	Name    string
	Fare    int
}

// CurrentCity projects the city in focus, or nil when the cursor is stale.
func CurrentCity(w *world.World) *CityView {
	id := w.CurrentCityID
	ident, okI := w.Identities.Get(id)
	city, okC := w.Cities.Get(id)
	if !okI || !okC {
		return nil
	}
	return &CityView{
		ID:            id,
		Name:          ident.Name,
		Description:   ident.Description,
		PriceModifier: city.PriceModifier,
	}
}

// CityLocations lists the locations of the current city, sorted by id.
func CityLocations(w *world.World) []LocationView {
	var out []LocationView
	for _, id := range w.EntitiesWith(component.KindLocation) {
		loc, _ := w.Locations.Get(id)
		if loc == nil || loc.CityID != w.CurrentCityID {
			continue
		}
		ident, ok := w.Identities.Get(id)
		if !ok {
			continue
		}
		out = append(out, LocationView{
			ID:          id,
			Name:        ident.Name,
			Description: ident.Description,
			Type:        loc.LocationType,
			NpcCount:    npcCountAt(w, id),
		})
	}
	return out
}

// CurrentLocation projects the location in focus, or nil when none is.
func CurrentLocation(w *world.World) *LocationView {
	id := w.CurrentLocationID
	if id == ecs.None {
		return nil
	}
	loc, okL := w.Locations.Get(id)
	ident, okI := w.Identities.Get(id)
	if !okL || !okI {
		return nil
	}
	return &LocationView{
		ID:          id,
		Name:        ident.Name,
		Description: ident.Description,
		Type:        loc.LocationType,
		NpcCount:    npcCountAt(w, id),
	}
}

func npcCountAt(w *world.World, locationID ecs.EntityID) int {
	count := 0
	w.Positions.Each(func(id ecs.EntityID, pos *component.Position) {
		if pos.LocationID == locationID && id != w.PlayerID {
			count++
		}
	})
	return count
}

// LocationNpcs lists the NPCs at the current location, sorted by id.
func LocationNpcs(w *world.World, reg *data.Registry) []NpcView {
	if w.CurrentLocationID == ecs.None {
		return nil
	}
	var out []NpcView
	for _, id := range w.EntitiesWithAll(component.KindPosition, component.KindIdentity) {
		pos, _ := w.Positions.Get(id)
		if pos.LocationID != w.CurrentLocationID || id == w.PlayerID {
			continue
		}
		if v := Npc(w, reg, id); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Npc projects a single NPC, or nil when the id has no identity.
func Npc(w *world.World, reg *data.Registry, id ecs.EntityID) *NpcView {
	ident, ok := w.Identities.Get(id)
	if !ok {
		return nil
	}
	v := &NpcView{
		ID:          id,
		Name:        ident.Name,
		Catchphrase: ident.Catchphrase,
		IsSeller:    w.Has(id, component.KindSeller),
		IsBuyer:     w.Has(id, component.KindBuyer),
		IsDoctor:    w.Has(id, component.KindDoctor),
		IsClerk:     w.Has(id, component.KindTicketClerk),
	}
	if wal, ok := w.Wallets.Get(id); ok {
		v.HasWallet = true
		v.Money = wal.Money
	}
	if inv, ok := w.Inventories.Get(id); ok {
		for _, e := range inv.Entries {
			v.Stock = append(v.Stock, StockLine{
				ItemID:    e.ItemID,
				Name:      reg.ItemName(e.ItemID),
				Quantity:  e.Quantity,
				UnitPrice: e.UnitPrice,
			})
		}
	}
	return v
}

// Player projects the player's wallet, health, and inventory.
func Player(w *world.World, reg *data.Registry) PlayerView {
	v := PlayerView{}
	if ident, ok := w.Identities.Get(w.PlayerID); ok {
		v.Name = ident.Name
	}
	if wal := w.PlayerWallet(); wal != nil {
		v.Money = wal.Money
	}
	if p := w.Player(); p != nil {
		v.Health = p.Health
		v.MaxHealth = p.MaxHealth
	}
	if inv := w.PlayerInventory(); inv != nil {
		for _, e := range inv.Entries {
			v.Items = append(v.Items, StockLine{
				ItemID:    e.ItemID,
				Name:      reg.ItemName(e.ItemID),
				Quantity:  e.Quantity,
				UnitPrice: e.UnitPrice,
			})
		}
	}
	return v
}

// TravelOptions lists the destinations served by clerks at the current
// location, one option per clerk/destination pair, sorted by clerk then
// destination.
func TravelOptions(w *world.World) []TravelOption {
	var out []TravelOption
	for _, clerkID := range w.EntitiesWithAll(component.KindTicketClerk, component.KindPosition) {
		pos, _ := w.Positions.Get(clerkID)
		if pos.LocationID != w.CurrentLocationID {
			continue
		}
		clerk, _ := w.TicketClerks.Get(clerkID)
		for _, cityID := range clerk.Destinations {
			name := ""
			if ident, ok := w.Identities.Get(cityID); ok {
				name = ident.Name
			}
			out = append(out, TravelOption{
				ClerkID: clerkID,
				CityID:  cityID,
				Name:    name,
				Fare:    clerk.BaseFare,
			})
		}
	}
	return out
}

// Clock is the in-world time derived from the tick counter, at 1440 ticks
// per day.
type Clock struct {
	Day    int
	Hour   int
	Minute int
}

const ticksPerDay = 1440

func ClockAt(tick int) Clock {
	return Clock{
		Day:    tick/ticksPerDay + 1,
		Hour:   (tick % ticksPerDay) / 60,
		Minute: tick % 60,
	}
}

func (c Clock) String() string {
	return fmt.Sprintf("Day %d, %02d:%02d", c.Day, c.Hour, c.Minute)
}
