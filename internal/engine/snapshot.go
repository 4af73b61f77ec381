package engine

import (
	"math/rand"

	"github.com/katuneko/lurhook/internal/config"
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
)

// SaveState - сериализуемый слепок забега целиком, включая
// недоигранную дуэль: загрузка возвращает игрока ровно в тот же ход.
type SaveState struct {
	Version int           `json:"version"`
	Seed    int64         `json:"seed"`
	Tuning  config.Tuning `json:"tuning"`

	World *domain.GameWorld `json:"world"`
	State *domain.State     `json:"state"`

	Replay domain.ReplaySession `json:"replay"`
}

const saveVersion = 1

// Snapshot снимает слепок текущего состояния.
func (g *Game) Snapshot() SaveState {
	return SaveState{
		Version: saveVersion,
		Seed:    g.cfg.Seed,
		Tuning:  g.cfg.Tuning,
		World:   g.state.World,
		State:   g.state,
		Replay:  g.Replay,
	}
}

// RestoreGame собирает движок из слепка. Каталоги в слепок не входят
// (их источник - assets/), поэтому передаются заново.
//
// Состояние math/rand не сериализуемо, поэтому после загрузки генератор
// пересеивается от зерна и номера хода. Партия остается честной и
// детерминированной, но бит-в-бит след совпадает только у реплеев,
// проигранных с нуля.
func RestoreGame(snap SaveState, types []domain.FishType, items []domain.ItemType) *Game {
	st := snap.State
	st.World = snap.World

	g := &Game{
		cfg: Config{
			Seed:   snap.Seed,
			Tuning: snap.Tuning,
			Types:  types,
			Items:  items,
		},
		state:    st,
		rng:      rand.New(rand.NewSource(snap.Seed + int64(st.Clock))),
		Replay:   snap.Replay,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	g.registerHandlers()
	return g
}
