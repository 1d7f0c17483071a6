package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CityTemplate holds static data for a city loaded from YAML.
type CityTemplate struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Description         string   `yaml:"description"`
	PriceModifier       float64  `yaml:"price_modifier"`
	RequiredLocations   []string `yaml:"required_locations"`
	RandomLocationPool  []string `yaml:"random_location_pool"`
	RandomLocationCount int      `yaml:"random_location_count"`
}

type cityListFile struct {
	Cities []CityTemplate `yaml:"cities"`
}

// CityTable holds all city templates indexed by id, preserving file order
// for generation (the first listed city is the player's starting city).
type CityTable struct {
	templates map[string]*CityTemplate
	order     []*CityTemplate
}

// LoadCityTable loads city templates from a YAML file.
func LoadCityTable(path string) (*CityTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read city_list: %w", err)
	}
	var f cityListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse city_list: %w", err)
	}
	t := &CityTable{templates: make(map[string]*CityTemplate, len(f.Cities))}
	for i := range f.Cities {
		c := &f.Cities[i]
		if c.PriceModifier <= 0 {
			c.PriceModifier = 1.0
		}
		t.templates[c.ID] = c
		t.order = append(t.order, c)
	}
	return t, nil
}

// Get returns a city template by id, or nil if not found.
func (t *CityTable) Get(id string) *CityTemplate {
	return t.templates[id]
}

// All returns the templates in file order.
func (t *CityTable) All() []*CityTemplate {
	return t.order
}

// Count returns the number of loaded templates.
func (t *CityTable) Count() int {
	return len(t.templates)
}
