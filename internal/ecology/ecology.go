// Package ecology manages the fish population of the island: initial
// spawning and per-turn movement. Fish never leave water and drift with
// the tide, so the spots worth casting at shift over a run.
package ecology

import (
	"math/rand"

	"github.com/katuneko/lurhook/internal/domain"
)

// SpawnPopulation размещает count рыб на водных клетках мира. Вид
// выбирается взвешенно по редкости среди видов, чья глубинная полоса
// накрывает клетку; клетки без подходящих видов пропускаются.
func SpawnPopulation(w *domain.GameWorld, types []domain.FishType, count int, rng *rand.Rand) []domain.Fish {
	water := waterTiles(w)
	if len(water) == 0 || len(types) == 0 {
		return nil
	}

	fishes := make([]domain.Fish, 0, count)
	// Ограничиваем число попыток: на мелкой карте глубоководным
	// видам может просто не хватить клеток.
	for attempts := 0; len(fishes) < count && attempts < count*20; attempts++ {
		pos := water[rng.Intn(len(water))]
		kind, ok := pickKind(types, w.DepthAt(pos), rng)
		if !ok {
			continue
		}
		fishes = append(fishes, domain.Fish{Kind: kind, Pos: pos})
	}
	return fishes
}

// pickKind выбирает вид взвешенно по редкости среди подходящих глубине.
func pickKind(types []domain.FishType, depth int, rng *rand.Rand) (domain.FishType, bool) {
	var total float64
	eligible := make([]domain.FishType, 0, len(types))
	for _, ft := range types {
		if depth >= ft.MinDepth && depth <= ft.MaxDepth {
			eligible = append(eligible, ft)
			total += ft.Rarity
		}
	}
	if len(eligible) == 0 || total <= 0 {
		return domain.FishType{}, false
	}

	roll := rng.Float64() * total
	for _, ft := range eligible {
		roll -= ft.Rarity
		if roll < 0 {
			return ft, true
		}
	}
	return eligible[len(eligible)-1], true
}

// Update двигает каждую рыбу на один ход: случайный шаг по соседним
// клеткам плюс снос течением drift. Шаги на сушу и за край карты
// отбрасываются - рыба остается на месте.
//
// Порядок обхода фиксирован (по индексу), на каждую рыбу ровно два
// вызова rng - это важно для воспроизводимости реплеев.
func Update(w *domain.GameWorld, fishes []domain.Fish, drift domain.Position, rng *rand.Rand) {
	for i := range fishes {
		dx := rng.Intn(3) - 1
		dy := rng.Intn(3) - 1

		next := fishes[i].Pos.Shift(dx+drift.X, dy+drift.Y)
		if !w.InBounds(next) || !w.TileAt(next).IsWater() {
			continue
		}
		// Глубинная полоса вида соблюдается и при движении
		d := w.DepthAt(next)
		if d < fishes[i].Kind.MinDepth || d > fishes[i].Kind.MaxDepth {
			continue
		}
		fishes[i].Pos = next
	}
}

func waterTiles(w *domain.GameWorld) []domain.Position {
	var tiles []domain.Position
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if w.TileAt(p).IsWater() {
				tiles = append(tiles, p)
			}
		}
	}
	return tiles
}
