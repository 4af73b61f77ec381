package domain

import "encoding/json"

// ReplayAction - запись одного принятого интента.
// Отклоненные интенты в реплей не попадают: они не тратят ход
// и не тянут рандом, значит на симуляцию не влияют.
type ReplayAction struct {
	Tick    int             `json:"tick"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ReplaySession - полная запись забега. Зерна и списка интентов
// достаточно для бит-в-бит повторения партии.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Actions   []ReplayAction `json:"actions"`
}
