package system

import (
	"math"

	"github.com/dustinlacewell/schedule-1/internal/component"
	"github.com/dustinlacewell/schedule-1/internal/core/ecs"
	"github.com/dustinlacewell/schedule-1/internal/data"
	"github.com/dustinlacewell/schedule-1/internal/scripting"
	"github.com/dustinlacewell/schedule-1/internal/world"
)

// ShopSystem implements the buy/sell transactions. Every operation validates
// all preconditions before touching the world; a false return means the
// world is byte-for-byte unchanged.
type ShopSystem struct {
	reg *data.Registry
	eco *scripting.Engine // nil = built-in formulas only
}

func NewShopSystem(reg *data.Registry, eco *scripting.Engine) *ShopSystem {
	return &ShopSystem{reg: reg, eco: eco}
}

// Buy moves quantity units of itemID from the seller's stock into the
// player's inventory at the seller's current listed unit price.
//
// Money leaves the player's wallet and goes nowhere: sellers accumulate
// stock, not cash. Selling, by contrast, does debit a buyer wallet when one
// exists. The asymmetry is inherited behavior, kept deliberately.
func (s *ShopSystem) Buy(w *world.World, npcID ecs.EntityID, itemID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	playerWallet := w.PlayerWallet()
	playerInv := w.PlayerInventory()
	npcInv, hasInv := w.Inventories.Get(npcID)
	_, isSeller := w.Sellers.Get(npcID)
	if playerWallet == nil || playerInv == nil || !hasInv || !isSeller {
		return false
	}

	stack := npcInv.Find(itemID)
	if stack == nil || stack.Quantity < quantity {
		return false
	}
	unitPrice := stack.UnitPrice
	totalCost := unitPrice * quantity
	if playerWallet.Money < totalCost {
		return false
	}

	npcInv.Remove(itemID, quantity)
	playerInv.AddAveraged(itemID, quantity, unitPrice)
	playerWallet.Money -= totalCost
	return true
}

// Sell moves quantity units of itemID from the player to a buyer NPC. The
// buyer pays round(basePrice × priceModifier × preference) per unit, where
// preference is the bonus/penalty multiplier for the item's category. A
// buyer without a wallet has unlimited funds; one with a wallet must afford
// the total and is debited.
func (s *ShopSystem) Sell(w *world.World, npcID ecs.EntityID, itemID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	playerWallet := w.PlayerWallet()
	playerInv := w.PlayerInventory()
	buyer, isBuyer := w.Buyers.Get(npcID)
	if playerWallet == nil || playerInv == nil || !isBuyer {
		return false
	}
	if playerInv.Quantity(itemID) < quantity {
		return false
	}

	sellPrice := s.sellPrice(buyer, itemID)
	totalValue := sellPrice * quantity

	npcWallet, hasWallet := w.Wallets.Get(npcID)
	if hasWallet && npcWallet.Money < totalValue {
		return false
	}

	playerInv.Remove(itemID, quantity)
	playerWallet.Money += totalValue
	if hasWallet {
		npcWallet.Money -= totalValue
	}
	if npcInv, ok := w.Inventories.Get(npcID); ok {
		npcInv.AddStacked(itemID, quantity, sellPrice)
	}
	return true
}

// sellPrice computes the per-unit price a buyer pays for an item. The Lua
// sell_price hook may serve the computation; the arithmetic is the same
// either way.
func (s *ShopSystem) sellPrice(buyer *component.Buyer, itemID string) int {
	base := s.reg.BasePrice(itemID)
	pref := 1.0
	switch category := s.reg.Category(itemID); {
	case buyer.Prefers(category):
		pref = buyer.PreferenceBonus
	case buyer.Dislikes(category):
		pref = buyer.DislikePenalty
	}
	if price, ok := s.eco.SellPrice(scripting.PriceContext{
		BasePrice:  base,
		Modifier:   buyer.PriceModifier,
		Preference: pref,
	}); ok {
		return price
	}
	return int(math.Round(float64(base) * buyer.PriceModifier * pref))
}
