// Package records loads recorded games from YAML or HCL files so they can be
// replayed through the rules engine.
// This package depends on game and registry; neither depends on records.
package records

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/connectx/internal/core"
	"github.com/vovakirdan/connectx/internal/game"
	"github.com/vovakirdan/connectx/internal/records/formats"
	"github.com/vovakirdan/connectx/internal/registry"
)

// Record represents a complete recorded game.
type Record struct {
	ID       string
	Name     string
	Variant  string
	Rows     int
	Columns  int
	InARow   int
	Players  []formats.Player
	Moves    []int
	Expect   string
	Metadata map[string]string
	FilePath string
}

// Rules resolves the board size, K and player count for the record: the
// named variant (classic when empty) with any explicit size, K or player
// list taking precedence.
func (r *Record) Rules() (string, core.GameConfig, error) {
	id := r.Variant
	if id == "" {
		id = "classic"
	}

	cfg := core.DefaultGameConfig()
	if registry.Exists(id) {
		v, err := registry.Create(id)
		if err != nil {
			return "", core.GameConfig{}, err
		}
		cfg = v.Config
	} else if r.Variant != "" {
		return "", core.GameConfig{}, fmt.Errorf("record %s: unknown variant %q", r.ID, r.Variant)
	}

	if r.Rows > 0 {
		cfg.Rows = r.Rows
	}
	if r.Columns > 0 {
		cfg.Columns = r.Columns
	}
	if r.InARow > 0 {
		cfg.InARow = r.InARow
	}
	if len(r.Players) > 0 {
		cfg.Players = len(r.Players)
	}
	return id, cfg, nil
}

// Roster builds the players named in the record, or nil if it names none.
// Players without a valid colour get the first unused chip colour.
func (r *Record) Roster() []core.Player {
	if len(r.Players) == 0 {
		return nil
	}

	players := core.DefaultPlayers(len(r.Players))
	taken := make(map[core.Color]bool)
	for i, p := range r.Players {
		players[i].Color = core.ColorNone
		if p.Name != "" {
			players[i].Name = p.Name
		}
		if color, ok := core.ParseColor(p.Color); ok && !taken[color] {
			players[i].Color = color
			taken[color] = true
		}
	}

	palette := core.ChipColors()
	for i := range players {
		if players[i].Color != core.ColorNone {
			continue
		}
		for _, c := range palette {
			if !taken[c] {
				players[i].Color = c
				taken[c] = true
				break
			}
		}
	}
	return players
}

// Validate checks the parts of a record that do not depend on the rules.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record %s: missing id", r.FilePath)
	}
	if len(r.Moves) == 0 {
		return fmt.Errorf("record %s: no moves", r.ID)
	}
	switch r.Expect {
	case "", game.OutcomeWon, game.OutcomeDraw, game.OutcomeEarlyDraw, game.StatusInProgress.String():
	default:
		return fmt.Errorf("record %s: unknown expected outcome %q", r.ID, r.Expect)
	}
	return nil
}

// Loader handles loading records from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new record loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all record files.
// Returns records sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Record, error) {
	var records []Record

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		rec, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		records = append(records, rec)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// LoadByID loads a specific record by ID.
func (l *Loader) LoadByID(id string) (Record, error) {
	records, err := l.LoadAll()
	if err != nil {
		return Record{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}

	return Record{}, fmt.Errorf("record not found: %s", id)
}

// ListIDs returns all record IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	records, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	return ids, nil
}

// LoadFile loads and validates a single record file.
func LoadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext, path)
	if err != nil {
		return Record{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	rec := Record{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Variant:  parsed.Variant,
		Rows:     parsed.Rows,
		Columns:  parsed.Columns,
		InARow:   parsed.InARow,
		Players:  parsed.Players,
		Moves:    parsed.Moves,
		Expect:   parsed.Expect,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, path string) (formats.Record, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".hcl":
		return formats.ParseHCL(data, path)
	default:
		return formats.Record{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
