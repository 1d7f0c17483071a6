package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StockEntry describes what a seller at a location may stock: a quantity
// range and a price multiplier for one item.
type StockEntry struct {
	ItemID          string  `yaml:"item_id"`
	MinQty          int     `yaml:"min_qty"`
	MaxQty          int     `yaml:"max_qty"`
	PriceMultiplier float64 `yaml:"price_multiplier"`
}

// LocationTemplate holds static data for a location type loaded from YAML.
// Stock is the location's stock template, used to seed seller inventories
// at generation time; it is empty for locations without sellers.
type LocationTemplate struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	NpcPool     []string     `yaml:"npc_pool"`
	NpcCount    int          `yaml:"npc_count"`
	Stock       []StockEntry `yaml:"stock"`
}

type locationListFile struct {
	Locations []LocationTemplate `yaml:"locations"`
}

// LocationTable holds all location templates indexed by id.
type LocationTable struct {
	templates map[string]*LocationTemplate
}

// LoadLocationTable loads location templates from a YAML file.
func LoadLocationTable(path string) (*LocationTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read location_list: %w", err)
	}
	var f locationListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse location_list: %w", err)
	}
	t := &LocationTable{templates: make(map[string]*LocationTemplate, len(f.Locations))}
	for i := range f.Locations {
		loc := &f.Locations[i]
		if loc.NpcCount <= 0 {
			loc.NpcCount = len(loc.NpcPool)
		}
		for j := range loc.Stock {
			if loc.Stock[j].PriceMultiplier <= 0 {
				loc.Stock[j].PriceMultiplier = 1.0
			}
		}
		t.templates[loc.ID] = loc
	}
	return t, nil
}

// Get returns a location template by id, or nil if not found.
func (t *LocationTable) Get(id string) *LocationTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *LocationTable) Count() int {
	return len(t.templates)
}
