package data

import "fmt"

// Registry bundles the four template tables. Templates are immutable after
// load; lookups return nil on a miss and callers treat that as "skip".
type Registry struct {
	Items     *ItemTable
	Cities    *CityTable
	Locations *LocationTable
	Npcs      *NpcTable
}

// Paths names the YAML files backing the registry.
type Paths struct {
	ItemList     string
	CityList     string
	LocationList string
	NpcList      string
}

// LoadRegistry loads all four template tables.
func LoadRegistry(p Paths) (*Registry, error) {
	items, err := LoadItemTable(p.ItemList)
	if err != nil {
		return nil, fmt.Errorf("load item table: %w", err)
	}
	cities, err := LoadCityTable(p.CityList)
	if err != nil {
		return nil, fmt.Errorf("load city table: %w", err)
	}
	locations, err := LoadLocationTable(p.LocationList)
	if err != nil {
		return nil, fmt.Errorf("load location table: %w", err)
	}
	npcs, err := LoadNpcTable(p.NpcList)
	if err != nil {
		return nil, fmt.Errorf("load npc table: %w", err)
	}
	return &Registry{Items: items, Cities: cities, Locations: locations, Npcs: npcs}, nil
}

// BasePrice returns an item's base price, or 0 when the item is unknown.
func (r *Registry) BasePrice(itemID string) int {
	if it := r.Items.Get(itemID); it != nil {
		return it.BasePrice
	}
	return 0
}

// Category returns an item's category, or "" when the item is unknown.
func (r *Registry) Category(itemID string) string {
	if it := r.Items.Get(itemID); it != nil {
		return it.Category
	}
	return ""
}

// ItemName returns an item's display name, falling back to the id.
func (r *Registry) ItemName(itemID string) string {
	if it := r.Items.Get(itemID); it != nil {
		return it.Name
	}
	return itemID
}
