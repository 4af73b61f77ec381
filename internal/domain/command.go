package domain

import "encoding/json"

// Intent - валидированный запрос игрока на один ход.
// Использует ActionType вместо строки: быстро и безопасно.
type Intent struct {
	Action  ActionType
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
