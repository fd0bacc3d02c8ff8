package config

import (
	_ "embed"
)

//go:embed defaults/connectx.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	limits := DefaultLimitsConfig()
	return Config{
		Limits: limits,
		Game: GameConfig{
			Variant: "classic",
		},
		Players: []PlayerConfig{
			{Name: "Red", Color: "red"},
			{Name: "Yellow", Color: "yellow"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Path: "~/.connectx/results.db",
		},
	}
}

// DefaultLimitsConfig returns the default board and roster limits.
func DefaultLimitsConfig() LimitsConfig {
	return LimitsConfig{
		MinRows:    4,
		MaxRows:    16,
		MinColumns: 4,
		MaxColumns: 16,
		MinPlayers: 2,
		MaxPlayers: 8,
	}
}
