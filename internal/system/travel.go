package system

import (
	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// TravelToCity moves the player to another city for a fare. The player ends
// up at city level (no location), the navigation cursors reset, and the
// screen returns to the city view. No-op when the city doesn't exist or the
// fare can't be paid.
func TravelToCity(w *world.World, cityID ecs.EntityID, fare int) bool {
	if fare < 0 {
		return false
	}
	if !w.Has(cityID, component.KindCity) {
		return false
	}
	playerWallet := w.PlayerWallet()
	playerPos, hasPos := w.Positions.Get(w.PlayerID)
	if playerWallet == nil || !hasPos {
		return false
	}
	if playerWallet.Money < fare {
		return false
	}

	playerWallet.Money -= fare
	playerPos.CityID = cityID
	playerPos.LocationID = ecs.None

	w.CurrentCityID = cityID
	w.CurrentLocationID = ecs.None
	w.CurrentNpcID = ecs.None
	w.Screen = world.ScreenCity
	return true
}
