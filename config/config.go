package config

import (
	"fmt"
	"kingdomino/game"
	"kingdomino/meta"
	"kingdomino/player"
	"slices"

	"github.com/spf13/viper"
)

// Modes the binary can run in.
const (
	ModeGame       = "game"
	ModeStrategies = "strategies"
	ModeThroughput = "throughput"
	ModeServe      = "serve"
)

var modes = []string{ModeGame, ModeStrategies, ModeThroughput, ModeServe}

type Config struct {
	Mode       string   `mapstructure:"MODE"`
	LogLevel   string   `mapstructure:"LOG_LEVEL"`
	HalfExtent int      `mapstructure:"HALF_EXTENT"`
	Goroutines int      `mapstructure:"GOROUTINES"`
	Seed       uint64   `mapstructure:"SEED"` // 0 draws a seed from the clock
	Strategies []string `mapstructure:"STRATEGIES"`
	Bonuses    bool     `mapstructure:"BONUSES"` // middle kingdom and harmony
	OutputDir  string   `mapstructure:"OUTPUT_DIR"`
	ServerPort string   `mapstructure:"SERVER_PORT"`
}

// Load reads defaults, then the optional file at cfgPath, then KINGDOMINO_*
// environment variables, each overriding the previous.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("MODE", ModeGame)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HALF_EXTENT", meta.HALF_EXTENT)
	v.SetDefault("GOROUTINES", meta.GO_ROUTINES)
	v.SetDefault("SEED", 0)
	v.SetDefault("STRATEGIES", []string{player.Greedy.String(), player.Scorer.String()})
	v.SetDefault("BONUSES", false)
	v.SetDefault("OUTPUT_DIR", "experiments")
	v.SetDefault("SERVER_PORT", "8080")

	v.SetEnvPrefix("KINGDOMINO")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(modes, c.Mode) {
		return fmt.Errorf("unknown mode %q, expected one of %v", c.Mode, modes)
	}
	if c.HalfExtent < game.MinHalfExtent || c.HalfExtent > game.MaxHalfExtent {
		return fmt.Errorf("half extent must be between %d and %d, got %d", game.MinHalfExtent, game.MaxHalfExtent, c.HalfExtent)
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if len(c.Strategies) < meta.MIN_PLAYERS || len(c.Strategies) > meta.MAX_PLAYERS {
		return fmt.Errorf("need between %d and %d strategies, got %d", meta.MIN_PLAYERS, meta.MAX_PLAYERS, len(c.Strategies))
	}
	for _, s := range c.Strategies {
		if _, err := player.ParseStrategy(s); err != nil {
			return err
		}
	}
	return nil
}
