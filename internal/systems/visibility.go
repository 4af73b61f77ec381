package systems

import (
	"math"

	"github.com/katuneko/lurhook/internal/domain"
)

// VisibilityParams - радиусы обзора (из tuning-конфига).
type VisibilityParams struct {
	// DeepWaterRadius - обзор на глубокой воде в ясную погоду.
	DeepWaterRadius int
	// StormRadius - потолок обзора во время шторма.
	StormRadius int
}

// VisibilityRadius возвращает радиус обзора игрока.
// На суше и мелководье горизонт открыт; глубокая вода ограничивает
// обзор, шторм ограничивает его еще сильнее.
func VisibilityRadius(w *domain.GameWorld, pos domain.Position, stormTurns int, p VisibilityParams) int {
	if w.TileAt(pos) != domain.TileDeepWater {
		return math.MaxInt32
	}
	r := p.DeepWaterRadius
	if stormTurns > 0 && p.StormRadius < r {
		r = p.StormRadius
	}
	return r
}

// Visible сообщает, видит ли игрок точку pt.
func Visible(w *domain.GameWorld, player, pt domain.Position, stormTurns int, p VisibilityParams) bool {
	return player.Chebyshev(pt) <= VisibilityRadius(w, player, stormTurns, p)
}
