package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katuneko/lurhook/internal/domain"
)

func TestReplayRoundtrip(t *testing.T) {
	svc := NewReplayService(t.TempDir())

	session := &domain.ReplaySession{
		Seed:      424242,
		Timestamp: 1700000000,
		Actions: []domain.ReplayAction{
			{Tick: 0, Action: domain.ActionCast},
			{Tick: 0, Action: domain.ActionMove, Payload: json.RawMessage(`{"dx":1,"dy":0}`)},
			{Tick: 1, Action: domain.ActionWait},
			{Tick: 2, Action: domain.ActionReel},
		},
	}

	if err := svc.Save(session); err != nil {
		t.Fatalf("Save: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(svc.SaveDir, "*.lhrp"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("Expected one replay file, got %v (%v)", matches, err)
	}

	loaded, err := svc.Load(matches[0])
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Seed != session.Seed || loaded.Timestamp != session.Timestamp {
		t.Errorf("Header mismatch: %+v", loaded)
	}
	if len(loaded.Actions) != len(session.Actions) {
		t.Fatalf("Expected %d actions, got %d", len(session.Actions), len(loaded.Actions))
	}
	for i, want := range session.Actions {
		got := loaded.Actions[i]
		if got.Tick != want.Tick || got.Action != want.Action {
			t.Errorf("Action %d mismatch: %+v vs %+v", i, got, want)
		}
		if string(got.Payload) != string(want.Payload) {
			t.Errorf("Action %d payload mismatch: %q vs %q", i, got.Payload, want.Payload)
		}
	}
}

func TestReplayLoadRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewReplayService(dir)

	path := filepath.Join(dir, "garbage.lhrp")
	if err := os.WriteFile(path, []byte("definitely not a replay file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Load(path); err == nil {
		t.Error("A file without the magic header must be rejected")
	}
}

func TestSaveGameRoundtrip(t *testing.T) {
	type snapshot struct {
		Seed  int64          `json:"seed"`
		Clock int            `json:"clock"`
		Pos   map[string]int `json:"pos"`
	}

	path := filepath.Join(t.TempDir(), "run.save")
	want := snapshot{Seed: 7, Clock: 120, Pos: map[string]int{"x": 3, "y": 9}}

	if err := SaveGame(path, want); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	var got snapshot
	if err := LoadGame(path, &got); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if got.Seed != want.Seed || got.Clock != want.Clock || got.Pos["x"] != 3 {
		t.Errorf("Roundtrip mismatch: %+v", got)
	}
}

func TestLoadGameMissingFile(t *testing.T) {
	var into struct{}
	if err := LoadGame(filepath.Join(t.TempDir(), "nope.save"), &into); err == nil {
		t.Error("Missing save file must return an error")
	}
}
