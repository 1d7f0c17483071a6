package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// testRegistry loads the item catalog used across these tests; the other
// tables stay empty because transactions only consult items.
func testRegistry(t *testing.T) *data.Registry {
	t.Helper()
	dir := t.TempDir()
	empty := func(name, key string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(key+": []"), 0o644))
		return path
	}
	reg, err := data.LoadRegistry(data.Paths{
		ItemList:     "testdata/item_list.yaml",
		CityList:     empty("cities.yaml", "cities"),
		LocationList: empty("locations.yaml", "locations"),
		NpcList:      empty("npcs.yaml", "npcs"),
	})
	require.NoError(t, err)
	return reg
}

// fixture is a hand-built world: a player, a seller with stock, a walleted
// buyer, a wallet-less buyer, a doctor, and a second city to travel to.
type fixture struct {
	w         *world.World
	player    ecs.EntityID
	seller    ecs.EntityID
	buyer     ecs.EntityID
	poorBuyer ecs.EntityID
	fence     ecs.EntityID // buyer without a wallet
	doctor    ecs.EntityID
	homeCity  ecs.EntityID
	otherCity ecs.EntityID
}

func newFixture() *fixture {
	w := world.New()
	f := &fixture{w: w}

	f.homeCity = w.CreateEntity()
	w.Cities.Set(f.homeCity, &component.City{PriceModifier: 1.0})
	f.otherCity = w.CreateEntity()
	w.Cities.Set(f.otherCity, &component.City{PriceModifier: 1.2})

	f.player = w.CreateEntity()
	w.Positions.Set(f.player, &component.Position{CityID: f.homeCity})
	w.Wallets.Set(f.player, &component.Wallet{Money: 500})
	w.Inventories.Set(f.player, &component.Inventory{})
	w.Players.Set(f.player, &component.Player{Health: 100, MaxHealth: 100})
	w.PlayerID = f.player
	w.CurrentCityID = f.homeCity

	f.seller = w.CreateEntity()
	w.Sellers.Set(f.seller, &component.Seller{PriceModifier: 1.0, RestockRate: 50})
	w.Inventories.Set(f.seller, &component.Inventory{Entries: []component.InventoryEntry{
		{ItemID: "weed", Quantity: 10, UnitPrice: 20},
	}})

	f.buyer = w.CreateEntity()
	w.Buyers.Set(f.buyer, &component.Buyer{
		PriceModifier:   0.7,
		PreferenceBonus: 1.2,
		DislikePenalty:  0.5,
	})
	w.Wallets.Set(f.buyer, &component.Wallet{Money: 500, MaxMoney: 1000})
	w.Inventories.Set(f.buyer, &component.Inventory{})

	f.poorBuyer = w.CreateEntity()
	w.Buyers.Set(f.poorBuyer, &component.Buyer{PriceModifier: 0.7, PreferenceBonus: 1.2, DislikePenalty: 0.5})
	w.Wallets.Set(f.poorBuyer, &component.Wallet{Money: 5})

	f.fence = w.CreateEntity()
	w.Buyers.Set(f.fence, &component.Buyer{PriceModifier: 0.5, PreferenceBonus: 1.2, DislikePenalty: 0.5})

	f.doctor = w.CreateEntity()
	w.Doctors.Set(f.doctor, &component.Doctor{HealAmount: 50, HealCost: 100})

	return f
}

func (f *fixture) playerWallet() *component.Wallet { return f.w.PlayerWallet() }
func (f *fixture) playerInv() *component.Inventory { return f.w.PlayerInventory() }

func (f *fixture) sellerInv() *component.Inventory {
	inv, _ := f.w.Inventories.Get(f.seller)
	return inv
}

func (f *fixture) give(itemID string, qty, price int) {
	f.playerInv().AddAveraged(itemID, qty, price)
}
