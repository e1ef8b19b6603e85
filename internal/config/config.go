package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Game       GameConfig     `yaml:"game"`
	Screen     ScreenConfig   `yaml:"screen"`
	Businesses []BusinessSpec `yaml:"businesses"`
	Log        LogConfig      `yaml:"log"`
	Journal    JournalConfig  `yaml:"journal"`
}

type GameConfig struct {
	Title           string  `yaml:"title"`
	TickRate        int     `yaml:"tick_rate"`
	StartingCash    float64 `yaml:"starting_cash"`
	Splash          bool    `yaml:"splash"`
	EchoUnknownKeys bool    `yaml:"echo_unknown_keys"`
}

// ScreenConfig positions the border, the business grid and the action menu.
// Coordinates are 1-based terminal cells.
type ScreenConfig struct {
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	GridX  int  `yaml:"grid_x"`
	GridY  int  `yaml:"grid_y"`
	MenuX  int  `yaml:"menu_x"`
	MenuY  int  `yaml:"menu_y"`
	Color  bool `yaml:"color"`
}

// BusinessSpec is one entry of the business catalog.
type BusinessSpec struct {
	Name        string        `yaml:"name"`
	Cycle       time.Duration `yaml:"cycle"`
	Payout      float64       `yaml:"payout"`
	UpgradeCost float64       `yaml:"upgrade_cost"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Pretty bool   `yaml:"pretty"`
}

// JournalConfig enables the SQLite audit journal when Path is set.
type JournalConfig struct {
	Path             string `yaml:"path"`
	SnapshotSchedule string `yaml:"snapshot_schedule"`
}

func Default() Config {
	return Config{
		Game: GameConfig{
			Title:    "Bot Net Worth",
			TickRate: 30,
			Splash:   true,
		},
		Screen: ScreenConfig{
			X:      2,
			Y:      2,
			Width:  100,
			Height: 25,
			GridX:  4,
			GridY:  6,
			MenuX:  4,
			MenuY:  22,
			Color:  true,
		},
		Businesses: []BusinessSpec{
			{Name: "Click Farm", Cycle: 1500 * time.Millisecond, Payout: 1, UpgradeCost: 10},
			{Name: "Spam Relay", Cycle: 3 * time.Second, Payout: 4, UpgradeCost: 60},
			{Name: "Crypto Miner", Cycle: 6 * time.Second, Payout: 15, UpgradeCost: 250},
			{Name: "Botnet Node", Cycle: 12 * time.Second, Payout: 60, UpgradeCost: 1000},
			{Name: "Proxy Mesh", Cycle: 24 * time.Second, Payout: 240, UpgradeCost: 4000},
			{Name: "Zero-Day Broker", Cycle: time.Minute, Payout: 1000, UpgradeCost: 20000},
		},
		Log: LogConfig{
			Level: "info",
			File:  "botnetworth.log",
		},
		Journal: JournalConfig{
			SnapshotSchedule: "@every 30s",
		},
	}
}

// Load starts from Default, reads an optional .env file, overlays the YAML
// file at path when it exists, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	_ = godotenv.Load()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("BNW_TICK_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BNW_TICK_RATE: %w", err)
		}
		cfg.Game.TickRate = n
	}
	if v := os.Getenv("BNW_STARTING_CASH"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BNW_STARTING_CASH: %w", err)
		}
		cfg.Game.StartingCash = f
	}
	if v := os.Getenv("BNW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BNW_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("BNW_JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
	return nil
}

// TickDuration is the simulated time that passes per tick.
func (c Config) TickDuration() time.Duration {
	if c.Game.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Game.TickRate)
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		return fmt.Errorf("game.tick_rate must be between 1 and 240, got %d", c.Game.TickRate)
	}
	if c.Game.StartingCash < 0 {
		return errors.New("game.starting_cash must not be negative")
	}
	if c.Screen.Width < 2 || c.Screen.Height < 2 {
		return fmt.Errorf("screen must be at least 2x2, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.X < 1 || c.Screen.Y < 1 || c.Screen.GridX < 2 || c.Screen.GridY < 2 {
		return errors.New("screen coordinates are 1-based and the grid needs a one cell margin")
	}
	if len(c.Businesses) == 0 {
		return errors.New("businesses: at least one business is required")
	}
	for i, b := range c.Businesses {
		if b.Name == "" {
			return fmt.Errorf("businesses[%d].name is required", i)
		}
		if b.Cycle <= 0 {
			return fmt.Errorf("businesses[%d].cycle must be positive", i)
		}
		if b.Payout < 0 {
			return fmt.Errorf("businesses[%d].payout must not be negative", i)
		}
		if b.UpgradeCost < 0 {
			return fmt.Errorf("businesses[%d].upgrade_cost must not be negative", i)
		}
	}
	if c.Journal.Path != "" && c.Journal.SnapshotSchedule == "" {
		return errors.New("journal.snapshot_schedule is required when journal.path is set")
	}
	return nil
}
