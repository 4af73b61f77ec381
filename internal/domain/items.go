package domain

import (
	"encoding/json"
	"fmt"
)

// ItemKind - категория снаряжения.
type ItemKind uint8

const (
	ItemRod ItemKind = iota
	ItemReel
	ItemLure
	ItemFood
)

var itemKindNames = map[ItemKind]string{
	ItemRod:  "Rod",
	ItemReel: "Reel",
	ItemLure: "Lure",
	ItemFood: "Food",
}

var itemKindValues = map[string]ItemKind{
	"Rod":  ItemRod,
	"Reel": ItemReel,
	"Lure": ItemLure,
	"Food": ItemFood,
}

func (k ItemKind) String() string {
	if s, ok := itemKindNames[k]; ok {
		return s
	}
	return "Rod"
}

func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := itemKindValues[s]
	if !ok {
		return fmt.Errorf("unknown item kind %q", s)
	}
	*k = v
	return nil
}

// ItemType - предмет снаряжения из assets/items.json.
// Бонусы интерпретируются в зависимости от Kind:
// Rod -> TensionBonus, Reel -> ReelFactor, Lure -> BiteBonus.
type ItemType struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         ItemKind `json:"kind"`
	TensionBonus int      `json:"tension_bonus"`
	ReelFactor   float64  `json:"reel_factor"`
	BiteBonus    float64  `json:"bite_bonus"`
}
