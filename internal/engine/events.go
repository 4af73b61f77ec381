package engine

import (
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/pkg/logger"
)

// resolveEvents - фаза событий и опасностей, один раз за ход.
// Порядок фиксирован: шторм -> событие тайла -> тик опасностей.
func (g *Game) resolveEvents() {
	g.tickStorm()

	switch g.state.World.TileAt(g.state.Player.Pos) {
	case domain.TileLand:
		g.rollLandEvent()
	case domain.TileDeepWater:
		g.rollStorm()
		g.rollHazard()
	}

	g.tickHazards()
}

func (g *Game) tickStorm() {
	st := g.state
	if st.StormTurns == 0 {
		return
	}
	st.StormTurns--
	if st.StormTurns == 0 {
		g.AddLog("Шторм стихает.", "EVENT")
	}
}

// rollLandEvent - случайная находка на берегу: отдых или консервы.
func (g *Game) rollLandEvent() {
	t := g.cfg.Tuning
	if g.rng.Intn(100) >= t.LandEventChance {
		return
	}
	if g.rng.Intn(2) == 0 {
		p := &g.state.Player
		if p.HP < t.MaxHP {
			p.HP++
		}
		g.AddLog("Вы передохнули у костра. +1 HP", "EVENT")
		return
	}
	g.state.Player.CannedFood++
	g.AddLog("Прибой вынес банку консервов.", "EVENT")
}

// rollStorm - шторм зарождается только над глубокой водой
// и только когда предыдущий уже стих.
func (g *Game) rollStorm() {
	st := g.state
	t := g.cfg.Tuning
	if st.StormTurns > 0 || g.rng.Intn(100) >= t.StormChance {
		return
	}
	st.StormTurns = t.StormDuration
	g.AddLog("Небо чернеет. Шторм!", "EVENT")
	logger.Log.WithField("turns", t.StormDuration).Debug("Storm rolled in")
}

// rollHazard подсаживает медузу на соседний водный тайл.
func (g *Game) rollHazard() {
	st := g.state
	t := g.cfg.Tuning
	if g.rng.Intn(100) >= t.HazardChance {
		return
	}

	pos := st.Player.Pos.Shift(g.rng.Intn(3)-1, g.rng.Intn(3)-1)
	if pos == st.Player.Pos || !st.World.TileAt(pos).IsWater() {
		// Неудачная клетка - медузы в этот ход не будет.
		return
	}
	st.Hazards = append(st.Hazards, domain.Hazard{Pos: pos, Turns: t.HazardDuration})
	g.AddLog("Рядом колышется медуза.", "EVENT")
}

// tickHazards - контактный урон и истечение таймеров.
func (g *Game) tickHazards() {
	st := g.state
	t := g.cfg.Tuning

	keep := st.Hazards[:0]
	for _, hz := range st.Hazards {
		if hz.Pos == st.Player.Pos {
			st.Player.HP -= t.HazardDamage
			st.Player.Line -= t.HazardLineLoss
			if st.Player.Line < 0 {
				st.Player.Line = 0
			}
			g.AddLog("Медуза обожгла вас! -1 HP, леска повреждена.", "EVENT")
		}
		hz.Turns--
		if hz.Turns > 0 {
			keep = append(keep, hz)
		}
	}
	st.Hazards = keep
}
