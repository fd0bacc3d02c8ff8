package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/game"
	"github.com/vovakirdan/connectx/internal/platform/text"
	"github.com/vovakirdan/connectx/internal/records"
)

var testdata = filepath.Join("..", "..", "internal", "records", "testdata")

func TestCollectRecordsInline(t *testing.T) {
	cfg = config.DefaultConfig()

	recs, err := collectRecords(nil, "", []int{3, 3})
	if err != nil {
		t.Fatalf("collectRecords() failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Variant != "classic" || len(recs[0].Moves) != 2 {
		t.Errorf("collectRecords() = %+v", recs)
	}

	if _, err := collectRecords(nil, "trio", nil); err == nil {
		t.Error("collectRecords() without files or moves should fail")
	}
}

func TestCollectRecordsPaths(t *testing.T) {
	recs, err := collectRecords([]string{
		filepath.Join(testdata, "row-win.yaml"),
		filepath.Join(testdata, "nested"),
	}, "", nil)
	if err != nil {
		t.Fatalf("collectRecords() failed: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "row-win" || recs[1].ID != "trio-early-draw" {
		t.Errorf("collectRecords() loaded %d records", len(recs))
	}

	if _, err := collectRecords([]string{filepath.Join(testdata, "missing.yaml")}, "", nil); err == nil {
		t.Error("collectRecords() with a missing file should fail")
	}
}

func TestReplayOneReport(t *testing.T) {
	cfg = config.DefaultConfig()
	flagQuiet = false

	rec, err := records.LoadFile(filepath.Join(testdata, "row-win.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := replayOne(&buf, text.New(false), rec, game.Options{}); err != nil {
		t.Fatalf("replayOne() failed: %v", err)
	}

	report := buf.String()
	for _, want := range []string{
		"== row-win - Bottom row race",
		"  7. Ann -> (0,3)  wins horizontal (0,0)-(0,3)",
		"RRRR...",
		"Ann wins after 7 moves",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReplayOneMismatch(t *testing.T) {
	cfg = config.DefaultConfig()
	flagQuiet = true

	rec := records.Record{ID: "hopeful", Moves: []int{0, 1}, Expect: game.OutcomeWon}

	var buf bytes.Buffer
	err := replayOne(&buf, text.New(false), rec, game.Options{})
	if err == nil {
		t.Fatal("replayOne() should report an outcome mismatch")
	}
	if !strings.Contains(buf.String(), "expected won, got in-progress") {
		t.Errorf("report = %q", buf.String())
	}
}
