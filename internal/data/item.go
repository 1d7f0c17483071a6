package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemTemplate holds static data for a tradeable item loaded from YAML.
type ItemTemplate struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	BasePrice int    `yaml:"base_price"`
	Category  string `yaml:"category"`
}

type itemListFile struct {
	Items []ItemTemplate `yaml:"items"`
}

// ItemTable holds all item templates indexed by id.
type ItemTable struct {
	templates map[string]*ItemTemplate
}

// LoadItemTable loads item templates from a YAML file.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item_list: %w", err)
	}
	var f itemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse item_list: %w", err)
	}
	t := &ItemTable{templates: make(map[string]*ItemTemplate, len(f.Items))}
	for i := range f.Items {
		it := &f.Items[i]
		t.templates[it.ID] = it
	}
	return t, nil
}

// Get returns an item template by id, or nil if not found.
func (t *ItemTable) Get(id string) *ItemTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *ItemTable) Count() int {
	return len(t.templates)
}
