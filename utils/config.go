package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the startup configuration for the simulation. The tick rate
// is deliberately absent: the driver runs at a fixed frame interval.
type Config struct {
	// Pattern names the seed preset loaded at startup.
	Pattern string `json:"pattern"`

	UseParallel    bool `json:"use_parallel"`
	UseBoundedGrid bool `json:"use_bounded_grid"`
	UseMemoryPool  bool `json:"use_memory_pool"`

	// PlainRenderer forces the stdout renderer even on a real terminal.
	PlainRenderer bool `json:"plain_renderer"`

	// Fallback grid dimensions, used only when no terminal screen is
	// available to sample at startup.
	Width  int `json:"width"`
	Height int `json:"height"`

	// MaxGenerations stops the loop after that many steps; 0 runs forever.
	MaxGenerations int `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Pattern:       "glider",
		UseParallel:   true,
		UseMemoryPool: true,
		Width:         60,
		Height:        30,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
