package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default tuning must be valid: %v", err)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if got != Default() {
		t.Error("Empty path should return defaults unchanged")
	}
}

func TestLoadOverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lurhook.yaml")
	body := "bite_base: 0.9\nstorm_duration: 7\naim_cancel_costs_turn: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.BiteBase != 0.9 {
		t.Errorf("bite_base not applied: %g", got.BiteBase)
	}
	if got.StormDuration != 7 {
		t.Errorf("storm_duration not applied: %d", got.StormDuration)
	}
	if !got.AimCancelCostsTurn {
		t.Error("aim_cancel_costs_turn not applied")
	}
	// Неупомянутые поля остаются дефолтными
	if got.MaxHP != Default().MaxHP {
		t.Errorf("Unrelated field changed: max_hp=%d", got.MaxHP)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bite_base: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("bite_base > 1 must be rejected at load time")
	}
}
