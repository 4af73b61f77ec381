package domain

import (
	"encoding/json"
	"fmt"
)

// FightStyle - манера боя рыбы на крючке. Модулирует дельту натяжения.
type FightStyle uint8

const (
	// FightAggressive - резкие рывки, большой разброс натяжения.
	FightAggressive FightStyle = iota
	// FightEndurance - долгая борьба с ровным, предсказуемым усилием.
	FightEndurance
	// FightEvasive - уходит с крючка, если леска провисает.
	FightEvasive
)

var fightStyleNames = map[FightStyle]string{
	FightAggressive: "Aggressive",
	FightEndurance:  "Endurance",
	FightEvasive:    "Evasive",
}

var fightStyleValues = map[string]FightStyle{
	"Aggressive": FightAggressive,
	"Endurance":  FightEndurance,
	"Evasive":    FightEvasive,
}

func (f FightStyle) String() string {
	if s, ok := fightStyleNames[f]; ok {
		return s
	}
	return "Aggressive"
}

// MarshalJSON сериализует стиль как строку (формат ассетов).
func (f FightStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FightStyle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := fightStyleValues[s]
	if !ok {
		return fmt.Errorf("unknown fight_style %q", s)
	}
	*f = v
	return nil
}

// FishType - вид рыбы из assets/fish.json. Read-only справочник.
type FishType struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Rarity   float64    `json:"rarity"`
	Strength int        `json:"strength"`
	MinDepth int        `json:"min_depth"`
	MaxDepth int        `json:"max_depth"`
	Style    FightStyle `json:"fight_style"`
	// Legendary помечает особо редких "босс"-рыб.
	Legendary bool `json:"legendary"`
}

// Fish - живая рыба на карте.
type Fish struct {
	Kind FishType `json:"kind"`
	Pos  Position `json:"pos"`
}
