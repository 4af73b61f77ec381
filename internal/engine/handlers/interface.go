package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/katuneko/lurhook/internal/config"
	"github.com/katuneko/lurhook/internal/domain"
)

// Context передает хендлеру состояние забега.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	State  *domain.State
	Tuning *config.Tuning
	Rng    *rand.Rand

	// Каталоги, загруженные на старте. Хендлеры их не меняют.
	Types []domain.FishType
	Items []domain.ItemType
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи движка напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, FISHING, CAPTURE, EVENT, ERROR)

	// Acted true, если действие тратит ход. Бесплатные действия
	// (сдвиг прицела, INIT) возвращают Acted=false: мир не двигается.
	Acted bool
}

// HandlerFunc - это контракт для любой команды (MOVE, CAST, REEL, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// Rejected - вспомогательная функция для отклоненного действия с причиной.
func Rejected(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR", Acted: false}
}
