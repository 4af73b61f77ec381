package engine

import (
	"time"

	"github.com/katuneko/lurhook/internal/config"
	"github.com/katuneko/lurhook/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно забега. От него зависят карта, популяция
	// рыб и все броски. Два забега с одним зерном и одной записью
	// интентов идентичны.
	Seed int64

	Tuning config.Tuning

	// Каталоги, загруженные из assets/.
	Types []domain.FishType
	Items []domain.ItemType
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Tuning: config.Default(),
	}
}
