package component

import "github.com/dustinlacewell/schedule-1/internal/core/ecs"

// Seller marks an entity as able to sell items to the player.
type Seller struct {
	PriceModifier   float64
	StockTemplateID string // location template whose stock seeded this seller
	RestockRate     int    // ticks between restocks; declared, not yet acted on
	LastRestockTick int
}

// Buyer marks an entity as able to buy items from the player.
type Buyer struct {
	PriceModifier       float64  // share of base price paid (0.7 = 70%)
	PreferredCategories []string // pay PreferenceBonus extra for these
	DislikedCategories  []string // pay DislikePenalty for these
	PreferenceBonus     float64
	DislikePenalty      float64
}

// Prefers reports whether category is on the buyer's preferred list.
func (b *Buyer) Prefers(category string) bool {
	for _, c := range b.PreferredCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Dislikes reports whether category is on the buyer's disliked list.
func (b *Buyer) Dislikes(category string) bool {
	for _, c := range b.DislikedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// CloneBuyer deep-copies a buyer for World.Clone.
func CloneBuyer(b Buyer) Buyer {
	out := b
	out.PreferredCategories = append([]string(nil), b.PreferredCategories...)
	out.DislikedCategories = append([]string(nil), b.DislikedCategories...)
	return out
}

// Doctor marks an entity as able to heal the player.
type Doctor struct {
	HealAmount int
	HealCost   int
}

// TicketClerk marks an entity as a travel vendor.
type TicketClerk struct {
	Destinations []ecs.EntityID // every city except the clerk's own
	BaseFare     int
}

// CloneTicketClerk deep-copies a clerk for World.Clone.
func CloneTicketClerk(c TicketClerk) TicketClerk {
	out := c
	out.Destinations = append([]ecs.EntityID(nil), c.Destinations...)
	return out
}
