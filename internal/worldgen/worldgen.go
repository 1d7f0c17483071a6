package worldgen

import (
	"math"
	"math/rand"

	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// Config holds the player-facing generation knobs.
type Config struct {
	PlayerName    string
	StartingMoney int
	MaxHealth     int
}

// Defaults for NPC wallets when a buyer template declares no starting money.
const (
	defaultNpcMoney  = 500
	defaultNpcIncome = 10
)

// Generate produces a complete world from the template registry. It runs
// exactly once per game; rng is the only source of non-determinism, so a
// fixed seed reproduces the same world.
//
// Cities are instantiated in template file order; the first city is the
// player's starting city. Ticket clerk destinations are back-filled after
// every city exists. Missing templates referenced anywhere are skipped, not
// errors.
func Generate(reg *data.Registry, cfg Config, rng *rand.Rand) *world.World {
	w := world.New()

	var cityIDs []ecs.EntityID

	for _, cityTpl := range reg.Cities.All() {
		cityID := w.CreateEntity()
		cityIDs = append(cityIDs, cityID)

		w.Identities.Set(cityID, &component.Identity{
			Name:        cityTpl.Name,
			Description: cityTpl.Description,
		})
		w.Cities.Set(cityID, &component.City{PriceModifier: cityTpl.PriceModifier})

		for _, locTplID := range cityLocationTypes(cityTpl, rng) {
			locTpl := reg.Locations.Get(locTplID)
			if locTpl == nil {
				continue
			}
			locationID := w.CreateEntity()

			w.Identities.Set(locationID, &component.Identity{
				Name:        locTpl.Name,
				Description: locTpl.Description,
			})
			w.Locations.Set(locationID, &component.Location{
				CityID:       cityID,
				LocationType: locTpl.ID,
			})

			for _, npcTplID := range sample(rng, locTpl.NpcPool, locTpl.NpcCount) {
				npcTpl := reg.Npcs.Get(npcTplID)
				if npcTpl == nil {
					continue
				}
				spawnNpc(w, reg, rng, npcTpl, locTpl, cityTpl, cityID, locationID)
			}
		}
	}

	// Clerk destinations: every city except the clerk's own. Possible only
	// now that all cities exist.
	w.TicketClerks.Each(func(id ecs.EntityID, clerk *component.TicketClerk) {
		pos, ok := w.Positions.Get(id)
		if !ok {
			return
		}
		clerk.Destinations = clerk.Destinations[:0]
		for _, cityID := range cityIDs {
			if cityID != pos.CityID {
				clerk.Destinations = append(clerk.Destinations, cityID)
			}
		}
	})

	spawnPlayer(w, cfg, cityIDs)
	return w
}

// cityLocationTypes resolves the set of location template ids for one city:
// the required list plus a sampled subset of the random pool, distinct
// within the city.
func cityLocationTypes(tpl *data.CityTemplate, rng *rand.Rand) []string {
	out := append([]string(nil), tpl.RequiredLocations...)
	seen := make(map[string]bool, len(out))
	for _, id := range out {
		seen[id] = true
	}
	pool := make([]string, 0, len(tpl.RandomLocationPool))
	for _, id := range tpl.RandomLocationPool {
		if !seen[id] {
			pool = append(pool, id)
		}
	}
	return append(out, sample(rng, pool, tpl.RandomLocationCount)...)
}

func spawnNpc(
	w *world.World,
	reg *data.Registry,
	rng *rand.Rand,
	npcTpl *data.NpcTemplate,
	locTpl *data.LocationTemplate,
	cityTpl *data.CityTemplate,
	cityID, locationID ecs.EntityID,
) {
	npcID := w.CreateEntity()

	w.Identities.Set(npcID, &component.Identity{
		Name:        pick(rng, npcTpl.NamePool),
		Catchphrase: pick(rng, npcTpl.CatchphrasePool),
	})
	w.Positions.Set(npcID, &component.Position{
		CityID:     cityID,
		LocationID: locationID,
	})

	if npcTpl.StartingMoney > 0 || npcTpl.Buyer != nil {
		money := npcTpl.StartingMoney
		if money <= 0 {
			money = defaultNpcMoney
		}
		w.Wallets.Set(npcID, &component.Wallet{
			Money:      money,
			MaxMoney:   money * 2,
			IncomeRate: defaultNpcIncome,
		})
	}

	if npcTpl.Seller != nil {
		w.Sellers.Set(npcID, &component.Seller{
			PriceModifier:   npcTpl.Seller.PriceModifier,
			StockTemplateID: locTpl.ID,
			RestockRate:     npcTpl.Seller.RestockRate,
		})
		w.Inventories.Set(npcID, &component.Inventory{
			Entries: rollStock(reg, rng, locTpl.Stock, npcTpl.Seller.PriceModifier, cityTpl.PriceModifier),
		})
	}

	if npcTpl.Buyer != nil {
		w.Buyers.Set(npcID, &component.Buyer{
			PriceModifier:       npcTpl.Buyer.PriceModifier,
			PreferredCategories: append([]string(nil), npcTpl.Buyer.PreferredCategories...),
			DislikedCategories:  append([]string(nil), npcTpl.Buyer.DislikedCategories...),
			PreferenceBonus:     npcTpl.Buyer.PreferenceBonus,
			DislikePenalty:      npcTpl.Buyer.DislikePenalty,
		})
		if _, ok := w.Inventories.Get(npcID); !ok {
			w.Inventories.Set(npcID, &component.Inventory{})
		}
	}

	if npcTpl.Doctor != nil {
		w.Doctors.Set(npcID, &component.Doctor{
			HealAmount: npcTpl.Doctor.HealAmount,
			HealCost:   npcTpl.Doctor.HealCost,
		})
	}

	if npcTpl.TicketClerk != nil {
		w.TicketClerks.Set(npcID, &component.TicketClerk{
			BaseFare: npcTpl.TicketClerk.BaseFare,
		})
	}
}

// rollStock generates a seller's starting inventory from the location's
// stock template. Entries referencing unknown items are skipped.
func rollStock(reg *data.Registry, rng *rand.Rand, stock []data.StockEntry, sellerMod, cityMod float64) []component.InventoryEntry {
	var entries []component.InventoryEntry
	for _, se := range stock {
		item := reg.Items.Get(se.ItemID)
		if item == nil {
			continue
		}
		qty := randRange(rng, se.MinQty, se.MaxQty)
		if qty <= 0 {
			continue
		}
		entries = append(entries, component.InventoryEntry{
			ItemID:    se.ItemID,
			Quantity:  qty,
			UnitPrice: round(float64(item.BasePrice) * se.PriceMultiplier * sellerMod * cityMod),
		})
	}
	return entries
}

func spawnPlayer(w *world.World, cfg Config, cityIDs []ecs.EntityID) {
	playerID := w.CreateEntity()
	startCity := ecs.None
	if len(cityIDs) > 0 {
		startCity = cityIDs[0]
	}

	name := cfg.PlayerName
	if name == "" {
		name = "Player"
	}
	w.Identities.Set(playerID, &component.Identity{Name: name})
	w.Positions.Set(playerID, &component.Position{CityID: startCity, LocationID: ecs.None})
	w.Wallets.Set(playerID, &component.Wallet{Money: cfg.StartingMoney})
	w.Inventories.Set(playerID, &component.Inventory{})
	w.Players.Set(playerID, &component.Player{Health: cfg.MaxHealth, MaxHealth: cfg.MaxHealth})

	w.PlayerID = playerID
	w.CurrentCityID = startCity
	w.CurrentLocationID = ecs.None
	w.CurrentNpcID = ecs.None
	w.Screen = world.ScreenCity
}

// sample draws up to n distinct entries from pool. A pool smaller than n
// yields the whole pool.
func sample(rng *rand.Rand, pool []string, n int) []string {
	if n >= len(pool) {
		return append([]string(nil), pool...)
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func pick(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

// randRange returns a uniform int in [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	if max < min {
		max = min
	}
	return min + rng.Intn(max-min+1)
}

func round(x float64) int {
	return int(math.Round(x))
}
