package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает НОВУЮ позицию, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Chebyshev расстояние "в ходах" (диагональ = 1).
func (p Position) Chebyshev(o Position) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// TileKind describes what a single map cell is made of.
type TileKind uint8

const (
	TileLand TileKind = iota
	TileShallowWater
	TileDeepWater
)

// String реализует интерфейс Stringer (для логов и DTO)
func (t TileKind) String() string {
	switch t {
	case TileShallowWater:
		return "SHALLOW"
	case TileDeepWater:
		return "DEEP"
	default:
		return "LAND"
	}
}

// IsWater true для любого тайла, где может жить рыба.
func (t TileKind) IsWater() bool {
	return t == TileShallowWater || t == TileDeepWater
}

// GameWorld хранит карту острова: тайлы и глубину в метрах.
// Заполняется генератором (pkg/island) один раз на забег.
type GameWorld struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  []TileKind `json:"tiles"`
	Depths []int      `json:"depths"`
}

// NewGameWorld создает мир, целиком залитый сушей.
func NewGameWorld(width, height int) *GameWorld {
	return &GameWorld{
		Width:  width,
		Height: height,
		Tiles:  make([]TileKind, width*height),
		Depths: make([]int, width*height),
	}
}

// Idx переводит координаты в индекс слайса. Ключ: Y * Width + X
func (w *GameWorld) Idx(p Position) int {
	return p.Y*w.Width + p.X
}

func (w *GameWorld) InBounds(p Position) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}

// TileAt возвращает тайл в точке. Вне границ считаем сушей.
func (w *GameWorld) TileAt(p Position) TileKind {
	if !w.InBounds(p) {
		return TileLand
	}
	return w.Tiles[w.Idx(p)]
}

// DepthAt возвращает глубину в метрах (0 для суши).
func (w *GameWorld) DepthAt(p Position) int {
	if !w.InBounds(p) {
		return 0
	}
	return w.Depths[w.Idx(p)]
}
