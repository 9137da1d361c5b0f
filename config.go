package meshgen

import (
	"encoding/json"
	"fmt"
	"os"
)

// Bounds are the limits a Policy clamps shape parameters to.
type Bounds struct {
	MinSides int     `json:"minSides"`
	MaxSides int     `json:"maxSides"`
	MinAngle float32 `json:"minAngle"`
	MaxAngle float32 `json:"maxAngle"`
}

func DefaultBounds() Bounds {
	return Bounds{
		MinSides: MIN_SIDES,
		MaxSides: MAX_SIDES,
		MinAngle: MIN_ANGLE,
		MaxAngle: MAX_ANGLE,
	}
}

// Config drives an Editor.
type Config struct {
	// redraw on every Update
	AutoUpdate bool `json:"autoUpdate"`

	// clamp parameters to Bounds on every Update
	RestrictUnsafeValues bool   `json:"restrictUnsafeValues"`
	Bounds               Bounds `json:"bounds"`

	LogPrefix string `json:"logPrefix,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		AutoUpdate:           true,
		RestrictUnsafeValues: true,
		Bounds:               DefaultBounds(),
		LogPrefix:            "meshgen",
	}
}

// ParseConfig decodes a json config. Fields missing from data keep their
// default value.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Bounds.MinSides > cfg.Bounds.MaxSides {
		return nil, fmt.Errorf("config sides bounds [%d, %d]: %w", cfg.Bounds.MinSides, cfg.Bounds.MaxSides, ErrInvalidParameter)
	}
	if cfg.Bounds.MinAngle > cfg.Bounds.MaxAngle {
		return nil, fmt.Errorf("config angle bounds [%g, %g]: %w", cfg.Bounds.MinAngle, cfg.Bounds.MaxAngle, ErrInvalidParameter)
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}
