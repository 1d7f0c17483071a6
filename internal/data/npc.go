package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SellerSpec declares the seller capability on an NPC template. The stock
// itself comes from the location the NPC is generated at.
type SellerSpec struct {
	PriceModifier float64 `yaml:"price_modifier"`
	RestockRate   int     `yaml:"restock_rate"`
}

// BuyerSpec declares the buyer capability on an NPC template.
type BuyerSpec struct {
	PriceModifier       float64  `yaml:"price_modifier"`
	PreferredCategories []string `yaml:"preferred_categories"`
	DislikedCategories  []string `yaml:"disliked_categories"`
	PreferenceBonus     float64  `yaml:"preference_bonus"`
	DislikePenalty      float64  `yaml:"dislike_penalty"`
}

// DoctorSpec declares the doctor capability on an NPC template.
type DoctorSpec struct {
	HealAmount int `yaml:"heal_amount"`
	HealCost   int `yaml:"heal_cost"`
}

// ClerkSpec declares the ticket-clerk capability on an NPC template.
// Destinations are back-filled at generation time, once all cities exist.
type ClerkSpec struct {
	BaseFare int `yaml:"base_fare"`
}

// NpcTemplate holds static data for an NPC type loaded from YAML. Identity
// fields are candidate pools; generation draws one entry from each.
type NpcTemplate struct {
	ID              string      `yaml:"id"`
	NamePool        []string    `yaml:"name_pool"`
	CatchphrasePool []string    `yaml:"catchphrase_pool"`
	StartingMoney   int         `yaml:"starting_money"`
	Seller          *SellerSpec `yaml:"seller"`
	Buyer           *BuyerSpec  `yaml:"buyer"`
	Doctor          *DoctorSpec `yaml:"doctor"`
	TicketClerk     *ClerkSpec  `yaml:"ticket_clerk"`
}

type npcListFile struct {
	Npcs []NpcTemplate `yaml:"npcs"`
}

// NpcTable holds all NPC templates indexed by id.
type NpcTable struct {
	templates map[string]*NpcTemplate
}

// LoadNpcTable loads NPC templates from a YAML file and applies capability
// defaults.
func LoadNpcTable(path string) (*NpcTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read npc_list: %w", err)
	}
	var f npcListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse npc_list: %w", err)
	}
	t := &NpcTable{templates: make(map[string]*NpcTemplate, len(f.Npcs))}
	for i := range f.Npcs {
		npc := &f.Npcs[i]
		if npc.Seller != nil {
			if npc.Seller.PriceModifier <= 0 {
				npc.Seller.PriceModifier = 1.0
			}
			if npc.Seller.RestockRate <= 0 {
				npc.Seller.RestockRate = 50
			}
		}
		if npc.Buyer != nil {
			if npc.Buyer.PriceModifier <= 0 {
				npc.Buyer.PriceModifier = 0.7
			}
			if npc.Buyer.PreferenceBonus <= 0 {
				npc.Buyer.PreferenceBonus = 1.2
			}
			if npc.Buyer.DislikePenalty <= 0 {
				npc.Buyer.DislikePenalty = 0.5
			}
		}
		t.templates[npc.ID] = npc
	}
	return t, nil
}

// Get returns an NPC template by id, or nil if not found.
func (t *NpcTable) Get(id string) *NpcTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *NpcTable) Count() int {
	return len(t.templates)
}
