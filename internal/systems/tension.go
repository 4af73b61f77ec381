package systems

import (
	"math/rand"

	"github.com/katuneko/lurhook/internal/domain"
)

// TensionParams - настройки арифметики натяжения (из tuning-конфига).
type TensionParams struct {
	// ReelStrength - базовое усилие подмотки. Умножается на
	// reel_factor катушки и вычитается из натяжения.
	ReelStrength int
}

// TensionDelta - чистая функция дельты натяжения за один ход дуэли.
// Детерминирована при фиксированном rng: одна и та же
// последовательность вызовов дает один и тот же след натяжения.
//
// Слагаемые:
//   - рывок рыбы, зависящий от манеры боя (тянет вверх);
//   - подмотка игрока (тянет вниз), если reeling.
func TensionDelta(style domain.FightStyle, reeling bool, reelFactor float64, p TensionParams, rng *rand.Rand) int {
	delta := struggle(style, reeling, rng)
	if reeling {
		delta -= int(float64(p.ReelStrength) * reelFactor)
	}
	return delta
}

// struggle - вклад рыбы. Ровно один вызов rng на ход: порядок
// выборок зафиксирован ради воспроизводимости реплеев.
func struggle(style domain.FightStyle, reeling bool, rng *rand.Rand) int {
	switch style {
	case domain.FightAggressive:
		// Резкие рывки: от провиса -2 до спазма +6.
		return rng.Intn(9) - 2
	case domain.FightEndurance:
		// Ровная изматывающая тяга.
		return rng.Intn(3) + 1
	case domain.FightEvasive:
		if !reeling {
			// Провисшая леска: рыба рвется к нулю натяжения (сходу).
			return -(rng.Intn(4) + 2)
		}
		return rng.Intn(5)
	default:
		return rng.Intn(3)
	}
}
