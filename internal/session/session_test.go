package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/config"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

func testRegistry(t *testing.T) *data.Registry {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}
	reg, err := data.LoadRegistry(data.Paths{
		ItemList: write("items.yaml", `items:
  - id: weed
    name: Weed
    base_price: 20
    category: drugs
`),
		CityList:     write("cities.yaml", "cities: []"),
		LocationList: write("locations.yaml", "locations: []"),
		NpcList:      write("npcs.yaml", "npcs: []"),
	})
	require.NoError(t, err)
	return reg
}

// sessionFixture wires a small world through a Session: two cities, two
// locations in the home city, a merchant NPC at one of them.
type sessionFixture struct {
	s         *Session
	w         *world.World
	homeCity  ecs.EntityID
	otherCity ecs.EntityID
	shop      ecs.EntityID // location holding the merchant
	park      ecs.EntityID // second location, empty
	merchant  ecs.EntityID // seller + buyer + clerk
	player    ecs.EntityID
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	w := world.New()
	f := &sessionFixture{w: w}

	f.homeCity = w.CreateEntity()
	w.Cities.Set(f.homeCity, &component.City{PriceModifier: 1.0})
	f.otherCity = w.CreateEntity()
	w.Cities.Set(f.otherCity, &component.City{PriceModifier: 1.2})

	f.shop = w.CreateEntity()
	w.Locations.Set(f.shop, &component.Location{CityID: f.homeCity, LocationType: "market"})
	f.park = w.CreateEntity()
	w.Locations.Set(f.park, &component.Location{CityID: f.homeCity, LocationType: "park"})

	f.merchant = w.CreateEntity()
	w.Positions.Set(f.merchant, &component.Position{CityID: f.homeCity, LocationID: f.shop})
	w.Sellers.Set(f.merchant, &component.Seller{PriceModifier: 1.0})
	w.Buyers.Set(f.merchant, &component.Buyer{PriceModifier: 0.7, PreferenceBonus: 1.2, DislikePenalty: 0.5})
	w.Inventories.Set(f.merchant, &component.Inventory{Entries: []component.InventoryEntry{
		{ItemID: "weed", Quantity: 10, UnitPrice: 20},
	}})
	w.Doctors.Set(f.merchant, &component.Doctor{HealAmount: 50, HealCost: 100})
	w.TicketClerks.Set(f.merchant, &component.TicketClerk{
		Destinations: []ecs.EntityID{f.otherCity},
		BaseFare:     100,
	})

	f.player = w.CreateEntity()
	w.Positions.Set(f.player, &component.Position{CityID: f.homeCity})
	w.Wallets.Set(f.player, &component.Wallet{Money: 500})
	w.Inventories.Set(f.player, &component.Inventory{})
	w.Players.Set(f.player, &component.Player{Health: 100, MaxHealth: 100})
	w.PlayerID = f.player
	w.CurrentCityID = f.homeCity
	w.Screen = world.ScreenCity

	costs := config.TimeConfig{
		WalkTicks:      60,
		TradeTicks:     1,
		HealTicks:      5,
		TravelTicks:    10080,
		IncomeInterval: 10,
	}
	f.s = New(w, testRegistry(t), nil, costs, zap.NewNop())
	return f
}

func TestEnterLocation_ChargesWalkTime(t *testing.T) {
	f := newSessionFixture(t)

	require.True(t, f.s.EnterLocation(f.shop))

	assert.Equal(t, 60, f.w.Tick)
	assert.Equal(t, f.shop, f.w.CurrentLocationID)
	assert.Equal(t, world.ScreenLocation, f.w.Screen)
	pos, _ := f.w.Positions.Get(f.player)
	assert.Equal(t, f.shop, pos.LocationID)
}

func TestEnterLocation_ReentryIsFree(t *testing.T) {
	f := newSessionFixture(t)
	require.True(t, f.s.EnterLocation(f.shop))
	f.s.ExitLocation()

	require.True(t, f.s.EnterLocation(f.shop))

	assert.Equal(t, 60, f.w.Tick, "re-entering the focused location costs nothing")
	assert.Equal(t, world.ScreenLocation, f.w.Screen)
}

func TestEnterLocation_SwitchingLocationsChargesAgain(t *testing.T) {
	f := newSessionFixture(t)
	require.True(t, f.s.EnterLocation(f.shop))
	require.True(t, f.s.EnterLocation(f.park))

	assert.Equal(t, 120, f.w.Tick)
	assert.Equal(t, f.park, f.w.CurrentLocationID)
}

func TestEnterLocation_RejectsOtherCityAndUnknown(t *testing.T) {
	f := newSessionFixture(t)
	elsewhere := f.w.CreateEntity()
	f.w.Locations.Set(elsewhere, &component.Location{CityID: f.otherCity, LocationType: "bar"})
	before := f.w.Clone()

	assert.False(t, f.s.EnterLocation(elsewhere))
	assert.False(t, f.s.EnterLocation(f.merchant), "an NPC is not a location")
	assert.Equal(t, before, f.w)
}

func TestTalkToNpc_FocusesAndStops(t *testing.T) {
	f := newSessionFixture(t)
	require.True(t, f.s.EnterLocation(f.shop))

	require.True(t, f.s.TalkToNpc(f.merchant))
	assert.Equal(t, f.merchant, f.w.CurrentNpcID)
	assert.Equal(t, world.ScreenNpc, f.w.Screen)

	f.s.StopTalking()
	assert.Equal(t, ecs.None, f.w.CurrentNpcID)
	assert.Equal(t, world.ScreenLocation, f.w.Screen)
}

func TestTalkToNpc_RejectsNpcElsewhere(t *testing.T) {
	f := newSessionFixture(t)
	require.True(t, f.s.EnterLocation(f.park))

	assert.False(t, f.s.TalkToNpc(f.merchant), "merchant is at the shop, not the park")
	assert.Equal(t, ecs.None, f.w.CurrentNpcID)
}

func TestStopTalking_FallsBackToCityView(t *testing.T) {
	f := newSessionFixture(t)
	f.w.Screen = world.ScreenNpc

	f.s.StopTalking()
	assert.Equal(t, world.ScreenCity, f.w.Screen, "no location in focus")
}

func TestBuy_ChargesTradeTimeOnlyOnSuccess(t *testing.T) {
	f := newSessionFixture(t)

	require.True(t, f.s.Buy(f.merchant, "weed", 3))
	assert.Equal(t, 1, f.w.Tick)
	assert.Equal(t, 440, f.w.PlayerWallet().Money)

	assert.False(t, f.s.Buy(f.merchant, "weed", 100))
	assert.Equal(t, 1, f.w.Tick, "failed purchase costs no time")
}

func TestSell_ChargesTradeTime(t *testing.T) {
	f := newSessionFixture(t)
	f.w.PlayerInventory().AddAveraged("weed", 2, 20)

	require.True(t, f.s.Sell(f.merchant, "weed", 2))
	assert.Equal(t, 1, f.w.Tick)
	assert.Equal(t, 528, f.w.PlayerWallet().Money) // 500 + 2 × round(20 × 0.7)

	assert.False(t, f.s.Sell(f.merchant, "weed", 1))
	assert.Equal(t, 1, f.w.Tick)
}

func TestHeal_ChargesHealTime(t *testing.T) {
	f := newSessionFixture(t)
	f.w.Player().Health = 40

	require.True(t, f.s.Heal(f.merchant))
	assert.Equal(t, 5, f.w.Tick)
	assert.Equal(t, 90, f.w.Player().Health)

	assert.False(t, f.s.Heal(f.merchant), "already healthy enough to refuse")
	assert.Equal(t, 5, f.w.Tick)
}

func TestTravel_ChargesFareAndTime(t *testing.T) {
	f := newSessionFixture(t)
	require.True(t, f.s.EnterLocation(f.shop))

	require.True(t, f.s.Travel(f.otherCity, 100, -1))

	assert.Equal(t, 60+10080, f.w.Tick)
	assert.Equal(t, 400, f.w.PlayerWallet().Money)
	assert.Equal(t, f.otherCity, f.w.CurrentCityID)
	assert.Equal(t, ecs.None, f.w.CurrentLocationID)
	assert.Equal(t, world.ScreenCity, f.w.Screen)
}

func TestTravel_ExplicitTicksOverrideDefault(t *testing.T) {
	f := newSessionFixture(t)

	require.True(t, f.s.Travel(f.otherCity, 0, 30))
	assert.Equal(t, 30, f.w.Tick)
}

func TestTravel_FailureCostsNothing(t *testing.T) {
	f := newSessionFixture(t)
	before := f.w.Clone()

	assert.False(t, f.s.Travel(f.merchant, 100, -1), "merchant is not a city")
	assert.Equal(t, before, f.w)
}

func TestFareTo(t *testing.T) {
	f := newSessionFixture(t)

	fare, ok := f.s.FareTo(f.merchant, f.otherCity)
	require.True(t, ok)
	assert.Equal(t, 100, fare)

	_, ok = f.s.FareTo(f.merchant, f.homeCity)
	assert.False(t, ok, "clerk doesn't serve the city it is in")

	_, ok = f.s.FareTo(f.player, f.otherCity)
	assert.False(t, ok, "player is not a clerk")
}

func TestWait_AdvancesClock(t *testing.T) {
	f := newSessionFixture(t)
	f.s.Wait(1440)
	assert.Equal(t, 1440, f.w.Tick)
}

func TestGoToTravelScreen(t *testing.T) {
	f := newSessionFixture(t)
	f.s.GoToTravelScreen()
	assert.Equal(t, world.ScreenTravel, f.w.Screen)
}
