package engine

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/pkg/logger"
)

// ReplayRun повторяет записанный забег с нуля: то же зерно, та же
// последовательность интентов - тот же мир в каждом ходу.
// Возвращает движок в финальном состоянии.
func ReplayRun(session domain.ReplaySession, cfg Config) (*Game, error) {
	cfg.Seed = session.Seed
	g := NewGame(cfg)

	for i, act := range session.Actions {
		if act.Tick != g.state.Clock {
			return nil, fmt.Errorf("replay desync at action %d: recorded tick %d, simulated %d",
				i, act.Tick, g.state.Clock)
		}
		g.Advance(domain.Intent{Action: act.Action, Payload: act.Payload})
		g.DrainLogs()
	}

	logger.Log.WithFields(map[string]any{
		"seed":  session.Seed,
		"turns": g.state.Clock,
		"score": g.state.FinalScore,
	}).Info("Replay finished")
	return g, nil
}
