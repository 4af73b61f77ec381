package systems

import (
	"math/rand"
	"testing"

	"github.com/katuneko/lurhook/internal/domain"
)

var testParams = TensionParams{ReelStrength: 10}

// След натяжения должен быть воспроизводим: одно зерно - одна трасса.
func TestTensionDelta_Deterministic(t *testing.T) {
	actions := []bool{true, false, true, true, false, true}

	trace := func() []int {
		rng := rand.New(rand.NewSource(123456))
		var out []int
		for _, reeling := range actions {
			out = append(out, TensionDelta(domain.FightAggressive, reeling, 1.0, testParams, rng))
		}
		return out
	}

	a, b := trace(), trace()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Trace diverged at step %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestTensionDelta_ReelingPullsDown(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Подмотка с запасом перекрывает любой рывок (+6 максимум у агрессивной)
	for i := 0; i < 100; i++ {
		d := TensionDelta(domain.FightAggressive, true, 1.0, testParams, rng)
		if d >= 0 {
			t.Fatalf("Reeling with factor 1.0 must lower tension, got %+d", d)
		}
	}
}

func TestTensionDelta_ReelFactorScales(t *testing.T) {
	// Один и тот же рывок, разные катушки: факторы сравниваем на
	// одинаковых выборках rng.
	rngA := rand.New(rand.NewSource(7))
	rngB := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		weak := TensionDelta(domain.FightEndurance, true, 1.0, testParams, rngA)
		strong := TensionDelta(domain.FightEndurance, true, 2.0, testParams, rngB)
		if strong != weak-testParams.ReelStrength {
			t.Fatalf("Factor 2.0 should pull exactly %d harder: weak=%d strong=%d",
				testParams.ReelStrength, weak, strong)
		}
	}
}

func TestTensionDelta_StyleCharacter(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	// Endurance без подмотки всегда тянет вверх
	for i := 0; i < 100; i++ {
		if d := TensionDelta(domain.FightEndurance, false, 1.0, testParams, rng); d < 1 {
			t.Fatalf("Endurance struggle should be >= 1, got %d", d)
		}
	}

	// Evasive на провисшей леске всегда рвется к нулю
	for i := 0; i < 100; i++ {
		if d := TensionDelta(domain.FightEvasive, false, 1.0, testParams, rng); d >= 0 {
			t.Fatalf("Evasive on slack line should drain tension, got %+d", d)
		}
	}

	// Aggressive дает больший разброс, чем Endurance
	spread := func(style domain.FightStyle) (min, max int) {
		r := rand.New(rand.NewSource(5))
		min, max = 1000, -1000
		for i := 0; i < 500; i++ {
			d := TensionDelta(style, false, 1.0, testParams, r)
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}
		return
	}
	aMin, aMax := spread(domain.FightAggressive)
	eMin, eMax := spread(domain.FightEndurance)
	if (aMax - aMin) <= (eMax - eMin) {
		t.Errorf("Aggressive spread [%d..%d] should exceed Endurance spread [%d..%d]",
			aMin, aMax, eMin, eMax)
	}
}
