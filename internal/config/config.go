package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Time    TimeConfig    `toml:"time"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Seed          int64  `toml:"seed"` // 0 = seed from current time
	PlayerName    string `toml:"player_name"`
	StartingMoney int    `toml:"starting_money"`
	MaxHealth     int    `toml:"max_health"`
}

// TimeConfig holds the fixed tick costs charged by player actions.
type TimeConfig struct {
	WalkTicks      int `toml:"walk_ticks"`      // entering a location
	TradeTicks     int `toml:"trade_ticks"`     // one buy or sell
	HealTicks      int `toml:"heal_ticks"`      // a doctor visit
	TravelTicks    int `toml:"travel_ticks"`    // intercity travel
	IncomeInterval int `toml:"income_interval"` // ticks between wallet income credits
}

type DataConfig struct {
	ItemList     string `toml:"item_list"`
	CityList     string `toml:"city_list"`
	LocationList string `toml:"location_list"`
	NpcList      string `toml:"npc_list"`
	ScriptsDir   string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			PlayerName:    "Player",
			StartingMoney: 500,
			MaxHealth:     100,
		},
		Time: TimeConfig{
			WalkTicks:      60,
			TradeTicks:     1,
			HealTicks:      5,
			TravelTicks:    7 * 1440,
			IncomeInterval: 10,
		},
		Data: DataConfig{
			ItemList:     "data/yaml/item_list.yaml",
			CityList:     "data/yaml/city_list.yaml",
			LocationList: "data/yaml/location_list.yaml",
			NpcList:      "data/yaml/npc_list.yaml",
			ScriptsDir:   "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
