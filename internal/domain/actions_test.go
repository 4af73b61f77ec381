package domain

import (
	"encoding/json"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"MOVE", ActionMove},
		{"move", ActionMove},
		{"Cast", ActionCast},
		{"REEL", ActionReel},
		{"END_RUN", ActionEndRun},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionMove, "MOVE"},
		{ActionCast, "CAST"},
		{ActionSnack, "SNACK"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestFightStyle_JSONRoundtrip(t *testing.T) {
	for _, style := range []FightStyle{FightAggressive, FightEndurance, FightEvasive} {
		raw, err := json.Marshal(style)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", style, err)
		}
		var back FightStyle
		if err := json.Unmarshal(raw, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", raw, err)
		}
		if back != style {
			t.Errorf("Roundtrip changed %v into %v", style, back)
		}
	}

	var bad FightStyle
	if err := json.Unmarshal([]byte(`"Cowardly"`), &bad); err == nil {
		t.Error("Unknown fight style should fail to parse")
	}
}

func TestPlayerEquipSwapsGear(t *testing.T) {
	p := Player{ReelFactor: 1.0}
	rod := ItemType{ID: "R1", Kind: ItemRod, TensionBonus: 5}

	if old := p.Equip(rod); old != nil {
		t.Errorf("First equip should not displace anything, got %v", old)
	}
	if p.TensionBonus != 5 {
		t.Errorf("Expected tension bonus 5, got %d", p.TensionBonus)
	}

	better := ItemType{ID: "R2", Kind: ItemRod, TensionBonus: 20}
	old := p.Equip(better)
	if old == nil || old.ID != "R1" {
		t.Errorf("Expected old rod R1 to be displaced, got %v", old)
	}
	if p.TensionBonus != 20 {
		t.Errorf("Expected tension bonus 20, got %d", p.TensionBonus)
	}
}
