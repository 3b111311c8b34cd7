package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/roadmap"
)

// ErrInvalidConfig is returned when a config file or flag value is rejected.
var ErrInvalidConfig = errors.New("routeplan: invalid config")

// Config is the serve configuration. Files are YAML; keys follow the json tags.
//
//	addr: ":8080"
//	map: ten
//	tie_policy: first
//	max_expansions: 10000
//	max_cost: 0        # 0 disables the cost horizon
//	log_level: debug
type Config struct {
	Addr          string  `json:"addr"`
	Map           string  `json:"map"`
	TiePolicy     string  `json:"tie_policy"`
	MaxExpansions int     `json:"max_expansions"`
	MaxCost       float64 `json:"max_cost"`
	LogLevel      string  `json:"log_level"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8080",
		Map:       "ten",
		TiePolicy: "last",
		LogLevel:  "info",
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("routeplan: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	if !slices.Contains(roadmap.SampleNames(), c.Map) {
		return fmt.Errorf("%w: unknown map %q (have %v)", ErrInvalidConfig, c.Map, roadmap.SampleNames())
	}
	if _, err := astar.ParseTiePolicy(c.TiePolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be non-negative", ErrInvalidConfig)
	}
	if c.MaxCost < 0 || math.IsNaN(c.MaxCost) {
		return fmt.Errorf("%w: max_cost must be non-negative", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SearchOptions translates the config into search options. Call Validate first.
func (c Config) SearchOptions() []astar.Option[int] {
	tie, _ := astar.ParseTiePolicy(c.TiePolicy)
	opts := []astar.Option[int]{
		astar.WithTiePolicy[int](tie),
		astar.WithMaxExpansions[int](c.MaxExpansions),
	}
	if c.MaxCost > 0 {
		opts = append(opts, astar.WithMaxCost[int](c.MaxCost))
	}

	return opts
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}

	return lvl, nil
}
