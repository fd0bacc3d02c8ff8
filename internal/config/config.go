// Package config provides YAML-based configuration loading for connectx:
// board limits, the default variant, the player roster, logging and storage.
package config

import (
	"github.com/vovakirdan/connectx/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	Limits  LimitsConfig   `yaml:"limits"`
	Game    GameConfig     `yaml:"game"`
	Players []PlayerConfig `yaml:"players"`
	Log     LogConfig      `yaml:"log"`
	Storage StorageConfig  `yaml:"storage"`
}

// LimitsConfig bounds the board sizes and player counts games may use.
type LimitsConfig struct {
	MinRows    int `yaml:"min_rows"`
	MaxRows    int `yaml:"max_rows"`
	MinColumns int `yaml:"min_columns"`
	MaxColumns int `yaml:"max_columns"`
	MinPlayers int `yaml:"min_players"`
	MaxPlayers int `yaml:"max_players"`
}

// GameConfig selects the variant used when none is given on the command line.
type GameConfig struct {
	Variant string `yaml:"variant"`
}

// PlayerConfig names a seat in the rotation.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig locates the results database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// CoreLimits converts the limits section for the game package.
func (c Config) CoreLimits() core.Limits {
	return core.Limits{
		MinRows:    c.Limits.MinRows,
		MaxRows:    c.Limits.MaxRows,
		MinColumns: c.Limits.MinColumns,
		MaxColumns: c.Limits.MaxColumns,
		MinPlayers: c.Limits.MinPlayers,
		MaxPlayers: c.Limits.MaxPlayers,
	}
}

// Roster builds a roster of n players. Configured players fill the first
// seats in order; remaining seats get default names and the first chip
// colours not already taken.
func (c Config) Roster(n int) []core.Player {
	defaults := core.DefaultPlayers(n)
	taken := make(map[core.Color]bool)
	players := make([]core.Player, n)

	for i := range players {
		players[i] = core.Player{ID: core.PlayerID(i + 1), Name: defaults[i].Name}
		if i >= len(c.Players) {
			continue
		}
		if c.Players[i].Name != "" {
			players[i].Name = c.Players[i].Name
		}
		if color, ok := core.ParseColor(c.Players[i].Color); ok {
			players[i].Color = color
			taken[color] = true
		}
	}

	palette := core.ChipColors()
	next := 0
	for i := range players {
		if players[i].Color != core.ColorNone {
			continue
		}
		for next < len(palette) && taken[palette[next]] {
			next++
		}
		if next < len(palette) {
			players[i].Color = palette[next]
			taken[palette[next]] = true
		}
	}
	return players
}
