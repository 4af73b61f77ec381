package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning - все игровые константы ядра. Ядро их не хардкодит:
// значения приходят из lurhook.yaml (или берутся дефолты).
type Tuning struct {
	// Карта
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
	FishCount int `yaml:"fish_count"`

	// Игрок
	MaxHP       int `yaml:"max_hp"`
	MaxHunger   int `yaml:"max_hunger"`
	MaxLine     int `yaml:"max_line"`
	HungerDecay int `yaml:"hunger_decay"` // голод за ход

	// Рыбалка
	CastRange        int     `yaml:"cast_range"`
	BiteBase         float64 `yaml:"bite_base"` // базовый шанс поклевки
	WaitMin          int     `yaml:"wait_min"`  // разброс таймера ожидания
	WaitMax          int     `yaml:"wait_max"`
	TensionBase      int     `yaml:"tension_base"`
	StrengthFactor   float64 `yaml:"strength_factor"` // вклад силы рыбы в максимум
	CaptureThreshold int     `yaml:"capture_threshold"`
	RequiredReels    int     `yaml:"required_reels"`
	ReelStrength     int     `yaml:"reel_strength"`
	LineDamage       int     `yaml:"line_damage"` // штраф лески за обрыв

	// События и опасности (проценты за ход)
	StormChance     int `yaml:"storm_chance"`
	StormDuration   int `yaml:"storm_duration"`
	HazardChance    int `yaml:"hazard_chance"`
	HazardDuration  int `yaml:"hazard_duration"`
	HazardDamage    int `yaml:"hazard_damage"`
	HazardLineLoss  int `yaml:"hazard_line_loss"`
	LandEventChance int `yaml:"land_event_chance"`

	// Еда
	EatRawFish    int `yaml:"eat_raw_fish"`
	EatCookedFish int `yaml:"eat_cooked_fish"`
	EatCannedFood int `yaml:"eat_canned_food"`
	CookHPRestore int `yaml:"cook_hp_restore"`

	// Время
	TimeSegmentTurns int `yaml:"time_segment_turns"`
	TideTurns        int `yaml:"tide_turns"`

	// Обзор
	DeepWaterRadius int `yaml:"deep_water_radius"`
	StormRadius     int `yaml:"storm_radius"`

	// Отмена прицеливания тратит ход? (открытый вопрос дизайна,
	// по умолчанию - нет)
	AimCancelCostsTurn bool `yaml:"aim_cancel_costs_turn"`
}

// Default возвращает настройки, совпадающие с оригинальным балансом.
func Default() Tuning {
	return Tuning{
		MapWidth:  120,
		MapHeight: 80,
		FishCount: 5,

		MaxHP:       10,
		MaxHunger:   100,
		MaxLine:     100,
		HungerDecay: 1,

		CastRange:        12,
		BiteBase:         0.4,
		WaitMin:          2,
		WaitMax:          5,
		TensionBase:      30,
		StrengthFactor:   1.5,
		CaptureThreshold: 5,
		RequiredReels:    3,
		ReelStrength:     10,
		LineDamage:       10,

		StormChance:     5,
		StormDuration:   5,
		HazardChance:    5,
		HazardDuration:  3,
		HazardDamage:    1,
		HazardLineLoss:  10,
		LandEventChance: 10,

		EatRawFish:    20,
		EatCookedFish: 40,
		EatCannedFood: 60,
		CookHPRestore: 2,

		TimeSegmentTurns: 10,
		TideTurns:        20,

		DeepWaterRadius: 5,
		StormRadius:     3,

		AimCancelCostsTurn: false,
	}
}

// Load читает tuning из YAML-файла поверх дефолтов.
// Пустой путь означает "только дефолты".
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate отсекает бессмысленные конфигурации на старте,
// до первого хода (ошибка конфигурации - фатальная).
func (t Tuning) Validate() error {
	switch {
	case t.MapWidth <= 0 || t.MapHeight <= 0:
		return fmt.Errorf("map size must be positive, got %dx%d", t.MapWidth, t.MapHeight)
	case t.MaxHP <= 0:
		return fmt.Errorf("max_hp must be positive, got %d", t.MaxHP)
	case t.BiteBase < 0 || t.BiteBase > 1:
		return fmt.Errorf("bite_base must be in [0,1], got %g", t.BiteBase)
	case t.WaitMin < 0 || t.WaitMax < t.WaitMin:
		return fmt.Errorf("wait range [%d,%d] is invalid", t.WaitMin, t.WaitMax)
	case t.TensionBase <= 0:
		return fmt.Errorf("tension_base must be positive, got %d", t.TensionBase)
	case t.CaptureThreshold < 0:
		return fmt.Errorf("capture_threshold must be >= 0, got %d", t.CaptureThreshold)
	case t.RequiredReels <= 0:
		return fmt.Errorf("required_reels must be positive, got %d", t.RequiredReels)
	case t.HungerDecay < 0:
		return fmt.Errorf("hunger_decay must be >= 0, got %d", t.HungerDecay)
	case t.TimeSegmentTurns <= 0:
		return fmt.Errorf("time_segment_turns must be positive, got %d", t.TimeSegmentTurns)
	case t.TideTurns <= 0:
		return fmt.Errorf("tide_turns must be positive, got %d", t.TideTurns)
	}
	return nil
}
