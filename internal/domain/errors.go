package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidIntent - действие запрещено в текущем режиме.
// Ход НЕ тратится, состояние НЕ мутируется; игрок видит сообщение.
var ErrInvalidIntent = errors.New("invalid intent")

// Invalidf оборачивает ErrInvalidIntent человекочитаемой причиной.
// Причина уходит игроку в лог, поэтому пишется на его языке.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidIntent, fmt.Sprintf(format, args...))
}
