package island

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katuneko/lurhook/internal/domain"
)

// Константы генерации
const (
	// NoiseFrequency - масштаб шума: меньше = крупнее острова.
	NoiseFrequency = 0.08
	// Пороги высоты. Ниже deep - глубокая вода, ниже shallow - мелководье,
	// остальное - суша.
	deepThreshold    = -0.2
	shallowThreshold = 0.0
	// depthScale переводит "высоту" шума в метры глубины.
	depthScale = 100.0
)

// Generate создает карту острова размером width x height.
// Детерминирован: одно зерно - одна и та же карта, бит в бит.
func Generate(seed int64, width, height int) *domain.GameWorld {
	w := domain.NewGameWorld(width, height)
	noise := opensimplex.New(seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Eval2(float64(x)*NoiseFrequency, float64(y)*NoiseFrequency)
			pt := domain.Position{X: x, Y: y}
			idx := w.Idx(pt)

			kind := domain.TileLand
			switch {
			case v < deepThreshold:
				kind = domain.TileDeepWater
			case v < shallowThreshold:
				kind = domain.TileShallowWater
			}
			w.Tiles[idx] = kind

			// Глубина: 0 на суше, иначе пропорциональна "высоте" под водой.
			if kind != domain.TileLand {
				d := int(-v * depthScale)
				if d < 0 {
					d = 0
				}
				w.Depths[idx] = d
			}
		}
	}

	return w
}

// StartPosition возвращает стартовый тайл игрока: ближайшая к центру
// суша. Если суши нет вообще (вырожденное зерно) - центр карты.
func StartPosition(w *domain.GameWorld) domain.Position {
	center := domain.Position{X: w.Width / 2, Y: w.Height / 2}
	if w.TileAt(center) == domain.TileLand {
		return center
	}

	// Расходящийся поиск по радиусу от центра.
	maxR := w.Width
	if w.Height > maxR {
		maxR = w.Height
	}
	for r := 1; r < maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx > -r && dx < r && dy > -r && dy < r {
					continue // только кольцо
				}
				pt := center.Shift(dx, dy)
				if w.InBounds(pt) && w.TileAt(pt) == domain.TileLand {
					return pt
				}
			}
		}
	}
	return center
}
