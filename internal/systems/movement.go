package systems

import (
	"github.com/katuneko/lurhook/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos domain.Position
	// Moved false, если шаг уперся в границу карты и позиция не изменилась.
	Moved bool
}

// CalculateMove вычисляет новую позицию игрока. Не меняет состояние мира!
// Стен на острове нет: ходить можно и по суше, и по воде,
// ограничивают только границы карты.
func CalculateMove(pos domain.Position, dx, dy int, w *domain.GameWorld) MovementResult {
	target := ClampToMap(pos.Shift(dx, dy), w)
	return MovementResult{NewPos: target, Moved: target != pos}
}

// ClampToMap прижимает произвольную точку к границам карты
// (используется и шагом игрока, и курсором прицеливания).
func ClampToMap(p domain.Position, w *domain.GameWorld) domain.Position {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > w.Width-1 {
		p.X = w.Width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > w.Height-1 {
		p.Y = w.Height - 1
	}
	return p
}
