package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID возвращает короткий случайный идентификатор (16 hex-символов).
// Используется как ID websocket-клиентов; полноценный UUID здесь избыточен.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
