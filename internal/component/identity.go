package component

import "github.com/dustinlacewell/schedule-1/internal/core/ecs"

// Identity holds display-only naming data.
// Pure data, zero methods — all mutations happen in system functions.
type Identity struct {
	Name        string
	Description string
	Catchphrase string
}

// Position places an entity in the world. LocationID is ecs.None when the
// entity is at city level, not inside any location.
type Position struct {
	CityID     ecs.EntityID
	LocationID ecs.EntityID
}
