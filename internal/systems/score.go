package systems

import "github.com/katuneko/lurhook/internal/domain"

// Score считает итоговый счет забега: чем реже рыба, тем она дороже.
// Формула: сумма (1/rarity * 10) по всем пойманным рыбам.
func Score(inventory []domain.FishType) int {
	total := 0
	for _, f := range inventory {
		if f.Rarity <= 0 {
			continue
		}
		total += int((1.0 / f.Rarity) * 10.0)
	}
	return total
}
