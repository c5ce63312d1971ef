// Package config loads tournament settings from an optional YAML file
// and environment variables. Flags on the CLI override both.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the tournament run settings.
type Config struct {
	Games        int    `yaml:"games"`
	Players      int    `yaml:"players"`
	Seed         uint64 `yaml:"seed"`
	Agents       string `yaml:"agents"`
	DatabasePath string `yaml:"database"`
	Workers      int    `yaml:"workers"`
	MaxDecisions int    `yaml:"max_decisions"`
	ExportCSV    bool   `yaml:"export_csv"`
}

// Default returns the settings used when nothing is configured: a small
// all-random 6 player run against an on-disk database.
func Default() *Config {
	return &Config{
		Games:        10,
		Players:      6,
		Seed:         1,
		Agents:       "random",
		DatabasePath: "tournament.db",
		Workers:      1,
		MaxDecisions: 20000,
	}
}

// Load builds the config from defaults, then the YAML file at path (if
// non-empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Games = envOrDefaultInt("TOURNAMENT_GAMES", cfg.Games)
	cfg.Players = envOrDefaultInt("TOURNAMENT_PLAYERS", cfg.Players)
	cfg.Seed = envOrDefaultUint("TOURNAMENT_SEED", cfg.Seed)
	cfg.Agents = envOrDefault("TOURNAMENT_AGENTS", cfg.Agents)
	cfg.DatabasePath = envOrDefault("TOURNAMENT_DB", cfg.DatabasePath)
	cfg.Workers = envOrDefaultInt("TOURNAMENT_WORKERS", cfg.Workers)

	return cfg, nil
}

// Validate rejects settings the runner cannot honor.
func (c *Config) Validate() error {
	if c.Players < 3 || c.Players > 6 {
		return fmt.Errorf("config: players must be 3-6, got %d", c.Players)
	}
	if c.Games < 1 {
		return fmt.Errorf("config: games must be positive, got %d", c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.MaxDecisions < 1 {
		return fmt.Errorf("config: max_decisions must be positive, got %d", c.MaxDecisions)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
