package session

import (
	"go.uber.org/zap"

	"github.com/dustinlacewell/schedule-1/internal/config"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	coresys "github.com/dustinlacewell/schedule-1/internal/core/system"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/scripting"
	"github.com/dustinlacewell/schedule-1/internal/system"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// Session is the sole owner of a World. It exposes the discrete action
// surface (trade, heal, travel, navigation) and charges each action's fixed
// time cost. Actions that fail their preconditions change nothing and cost
// nothing; presentation layers detect "nothing changed", the session never
// returns an error for a rejected action.
type Session struct {
	World *world.World

	shop   *system.ShopSystem
	runner *coresys.Runner
	costs  config.TimeConfig
	log    *zap.Logger
}

func New(w *world.World, reg *data.Registry, eco *scripting.Engine, costs config.TimeConfig, log *zap.Logger) *Session {
	runner := coresys.NewRunner()
	runner.Register(system.NewIncomeSystem(w, costs.IncomeInterval))
	runner.Register(system.NewRestockSystem(w))

	return &Session{
		World:  w,
		shop:   system.NewShopSystem(reg, eco),
		runner: runner,
		costs:  costs,
		log:    log,
	}
}

// Wait advances in-world time without doing anything else.
func (s *Session) Wait(ticks int) {
	system.AdvanceTime(s.World, s.runner, ticks)
}

// ── Navigation ────────────────────────────────────────────────

// EnterLocation walks the player to a location in the current city.
// Re-entering the location already in focus costs no time; entering a
// different one charges the walk cost. Unknown locations and locations in
// other cities are no-ops.
func (s *Session) EnterLocation(locationID ecs.EntityID) bool {
	loc, ok := s.World.Locations.Get(locationID)
	if !ok || loc.CityID != s.World.CurrentCityID {
		return false
	}

	if s.World.CurrentLocationID != locationID {
		system.AdvanceTime(s.World, s.runner, s.costs.WalkTicks)
		s.World.CurrentLocationID = locationID
		if pos, ok := s.World.Positions.Get(s.World.PlayerID); ok {
			pos.LocationID = locationID
		}
	}
	s.World.CurrentNpcID = ecs.None
	s.World.Screen = world.ScreenLocation
	return true
}

// ExitLocation returns to the city view. The current location stays in
// focus so re-entering it is free.
func (s *Session) ExitLocation() {
	s.World.CurrentNpcID = ecs.None
	s.World.Screen = world.ScreenCity
}

// TalkToNpc focuses an NPC at the current location. Costs no time.
func (s *Session) TalkToNpc(npcID ecs.EntityID) bool {
	pos, ok := s.World.Positions.Get(npcID)
	if !ok || pos.LocationID != s.World.CurrentLocationID {
		return false
	}
	s.World.CurrentNpcID = npcID
	s.World.Screen = world.ScreenNpc
	return true
}

// StopTalking drops NPC focus, returning to the location view, or the city
// view when no location is in focus.
func (s *Session) StopTalking() {
	s.World.CurrentNpcID = ecs.None
	if s.World.CurrentLocationID != ecs.None {
		s.World.Screen = world.ScreenLocation
	} else {
		s.World.Screen = world.ScreenCity
	}
}

// GoToTravelScreen opens the travel view.
func (s *Session) GoToTravelScreen() {
	s.World.Screen = world.ScreenTravel
}

// ── Player actions ────────────────────────────────────────────

// Buy purchases quantity units of an item from an NPC seller. Charges the
// trade time cost only when the purchase applies.
func (s *Session) Buy(npcID ecs.EntityID, itemID string, quantity int) bool {
	if !s.shop.Buy(s.World, npcID, itemID, quantity) {
		return false
	}
	system.AdvanceTime(s.World, s.runner, s.costs.TradeTicks)
	s.log.Debug("bought",
		zap.String("item", itemID),
		zap.Int("qty", quantity),
		zap.Uint64("npc", uint64(npcID)))
	return true
}

// Sell sells quantity units of an item to an NPC buyer.
func (s *Session) Sell(npcID ecs.EntityID, itemID string, quantity int) bool {
	if !s.shop.Sell(s.World, npcID, itemID, quantity) {
		return false
	}
	system.AdvanceTime(s.World, s.runner, s.costs.TradeTicks)
	s.log.Debug("sold",
		zap.String("item", itemID),
		zap.Int("qty", quantity),
		zap.Uint64("npc", uint64(npcID)))
	return true
}

// Heal pays a doctor NPC to heal the player.
func (s *Session) Heal(npcID ecs.EntityID) bool {
	if !system.HealPlayer(s.World, npcID) {
		return false
	}
	system.AdvanceTime(s.World, s.runner, s.costs.HealTicks)
	return true
}

// Travel moves the player to another city for a fare, then spends the
// travel time. travelTicks < 0 uses the configured default.
func (s *Session) Travel(cityID ecs.EntityID, fare int, travelTicks int) bool {
	if !system.TravelToCity(s.World, cityID, fare) {
		return false
	}
	if travelTicks < 0 {
		travelTicks = s.costs.TravelTicks
	}
	system.AdvanceTime(s.World, s.runner, travelTicks)
	s.log.Debug("traveled",
		zap.Uint64("city", uint64(cityID)),
		zap.Int("fare", fare))
	return true
}

// FareTo returns the fare a clerk NPC charges to a destination, and whether
// the clerk serves that destination at all.
func (s *Session) FareTo(clerkID, cityID ecs.EntityID) (int, bool) {
	clerk, ok := s.World.TicketClerks.Get(clerkID)
	if !ok {
		return 0, false
	}
	for _, dest := range clerk.Destinations {
		if dest == cityID {
			return clerk.BaseFare, true
		}
	}
	return 0, false
}
