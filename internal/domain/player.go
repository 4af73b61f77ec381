package domain

// Player - состояние игрока. Мутируется только планировщиком хода
// и его хендлерами; наружу уходит в виде DTO (pkg/api).
type Player struct {
	Pos Position `json:"pos"`
	// HP - здоровье. 0 означает конец забега.
	HP int `json:"hp"`
	// Hunger - сытость 0..100. При нуле начинает таять HP.
	Hunger int `json:"hunger"`
	// Line - прочность лески 0..100. При нуле закидывать нельзя.
	Line int `json:"line"`

	// Модификаторы от экипированного снаряжения.
	BiteBonus    float64 `json:"bite_bonus"`
	TensionBonus int     `json:"tension_bonus"`
	ReelFactor   float64 `json:"reel_factor"`

	// CannedFood - запас консервов.
	CannedFood int `json:"canned_food"`

	// Inventory - пойманные рыбы, в порядке поимки.
	Inventory []FishType `json:"inventory"`
	// Items - снаряжение и расходники в рюкзаке.
	Items []ItemType `json:"items"`

	// Экипированное снаряжение (nil = слот пуст).
	Rod  *ItemType `json:"rod,omitempty"`
	Reel *ItemType `json:"reel,omitempty"`
	Lure *ItemType `json:"lure,omitempty"`
}

// Equip надевает предмет и возвращает вытесненный (или nil).
// Модификаторы игрока обновляются сразу.
func (p *Player) Equip(item ItemType) *ItemType {
	var old *ItemType
	switch item.Kind {
	case ItemRod:
		old = p.Rod
		p.Rod = &item
		p.TensionBonus = item.TensionBonus
	case ItemReel:
		old = p.Reel
		p.Reel = &item
		p.ReelFactor = item.ReelFactor
	case ItemLure:
		old = p.Lure
		p.Lure = &item
		p.BiteBonus = item.BiteBonus
	}
	return old
}
