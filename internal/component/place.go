package component

import "github.com/dustinlacewell/schedule-1/internal/core/ecs"

// Location marks an entity as a place inside a city.
type Location struct {
	CityID       ecs.EntityID
	LocationType string // template id: "airport", "dealer_den", ...
}

// City marks an entity as a city. PriceModifier scales every price in it.
type City struct {
	PriceModifier float64
}

// Player marks the singular player-controlled entity.
type Player struct {
	Health    int // clamped to [0, MaxHealth]
	MaxHealth int
}
