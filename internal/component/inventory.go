package component

import "math"

// InventoryEntry is one item stack. Quantity is always > 0 — a stack
// dropping to zero is removed from the inventory, never kept.
type InventoryEntry struct {
	ItemID    string
	Quantity  int
	UnitPrice int // what the holder paid / will sell for, per unit
}

// Inventory holds an entity's item stacks, one entry per item id.
type Inventory struct {
	Entries []InventoryEntry
}

// Find returns a pointer to the stack for itemID, or nil.
func (inv *Inventory) Find(itemID string) *InventoryEntry {
	for i := range inv.Entries {
		if inv.Entries[i].ItemID == itemID {
			return &inv.Entries[i]
		}
	}
	return nil
}

// Quantity returns the held quantity of itemID, zero when absent.
func (inv *Inventory) Quantity(itemID string) int {
	if e := inv.Find(itemID); e != nil {
		return e.Quantity
	}
	return 0
}

// AddAveraged merges quantity units bought at unitPrice into the inventory.
// An existing stack keeps a quantity-weighted average unit price, rounded
// half away from zero.
func (inv *Inventory) AddAveraged(itemID string, quantity, unitPrice int) {
	if quantity <= 0 {
		return
	}
	e := inv.Find(itemID)
	if e == nil {
		inv.Entries = append(inv.Entries, InventoryEntry{ItemID: itemID, Quantity: quantity, UnitPrice: unitPrice})
		return
	}
	total := e.Quantity + quantity
	e.UnitPrice = int(math.Round(float64(e.Quantity*e.UnitPrice+quantity*unitPrice) / float64(total)))
	e.Quantity = total
}

// AddStacked merges quantity units into the inventory, leaving the price of
// an existing stack untouched. Used for buyers, whose stack keeps their own
// valuation.
func (inv *Inventory) AddStacked(itemID string, quantity, unitPrice int) {
	if quantity <= 0 {
		return
	}
	if e := inv.Find(itemID); e != nil {
		e.Quantity += quantity
		return
	}
	inv.Entries = append(inv.Entries, InventoryEntry{ItemID: itemID, Quantity: quantity, UnitPrice: unitPrice})
}

// Remove takes quantity units of itemID out of the inventory. A stack
// reaching zero is deleted. Returns false (and changes nothing) when the
// inventory holds fewer than quantity units.
func (inv *Inventory) Remove(itemID string, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	for i := range inv.Entries {
		if inv.Entries[i].ItemID != itemID {
			continue
		}
		if inv.Entries[i].Quantity < quantity {
			return false
		}
		inv.Entries[i].Quantity -= quantity
		if inv.Entries[i].Quantity == 0 {
			inv.Entries = append(inv.Entries[:i], inv.Entries[i+1:]...)
		}
		return true
	}
	return false
}

// CloneInventory deep-copies an inventory for World.Clone.
func CloneInventory(inv Inventory) Inventory {
	out := Inventory{}
	if inv.Entries != nil {
		out.Entries = make([]InventoryEntry, len(inv.Entries))
		copy(out.Entries, inv.Entries)
	}
	return out
}
