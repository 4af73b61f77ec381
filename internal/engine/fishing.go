package engine

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/systems"
	"github.com/katuneko/lurhook/pkg/logger"
)

// fishingTick - один ход вложенного автомата рыбалки.
// Casting -> Waiting -> Dueling; любой исход дуэли закрывает сессию.
func (g *Game) fishingTick() {
	s := g.state.Session

	switch s.Phase {
	case domain.PhaseCasting:
		// Полет лески занимает ровно один ход.
		s.CastStep = len(s.CastPath)
		s.Phase = domain.PhaseWaiting
		g.AddLog("Наживка плюхнулась в воду.", "FISHING")

	case domain.PhaseWaiting:
		g.waitingTick()

	case domain.PhaseDueling:
		g.duelingTick()
	}
}

// waitingTick тикает таймер ожидания и на нуле бросает поклевку.
func (g *Game) waitingTick() {
	st := g.state
	s := st.Session

	s.Wait--
	if s.Wait > 0 {
		return
	}

	// Шанс поклевки: база + наживка, прижат к [0,1].
	chance := g.cfg.Tuning.BiteBase + st.Player.BiteBonus
	if chance > 1 {
		chance = 1
	}
	if chance < 0 {
		chance = 0
	}

	// Порядок выборок фиксирован: сначала бросок поклевки, потом
	// выбор рыбы. Оба - даже если кандидатов нет.
	bites := g.rng.Float64() < chance
	idx := g.pickCandidate()

	if !bites || idx < 0 {
		st.Session = nil
		st.Mode = domain.ModeExploring
		g.AddLog("Поклевки нет. Вы сматываете леску.", "FISHING")
		return
	}

	// Рыба на крючке: изымаем из мира, при сходе вернем.
	fish := st.Fishes[idx]
	st.Fishes = append(st.Fishes[:idx], st.Fishes[idx+1:]...)

	maxTension := g.cfg.Tuning.TensionBase + st.Player.TensionBonus +
		int(float64(fish.Kind.Strength)*g.cfg.Tuning.StrengthFactor)
	s.Candidate = &fish
	s.Meter = domain.NewTensionMeter(maxTension, g.cfg.Tuning.CaptureThreshold, g.cfg.Tuning.RequiredReels)
	s.Phase = domain.PhaseDueling

	g.AddLog("Клюет! Леска натянулась до предела.", "FISHING")
	logger.Log.WithFields(map[string]any{
		"species": fish.Kind.ID,
		"tension": maxTension,
	}).Debug("Bite")
}

// pickCandidate выбирает клюнувшую рыбу: взвешенно по редкости среди
// рыб, чья глубинная полоса накрывает точку заброса. -1, если таких нет.
// Ровно один вызов rng при любом исходе.
func (g *Game) pickCandidate() int {
	st := g.state
	depth := st.World.DepthAt(st.Session.Target)

	roll := g.rng.Float64()

	var total float64
	eligible := make([]int, 0, len(st.Fishes))
	for i, f := range st.Fishes {
		if depth >= f.Kind.MinDepth && depth <= f.Kind.MaxDepth {
			eligible = append(eligible, i)
			total += f.Kind.Rarity
		}
	}
	if len(eligible) == 0 || total <= 0 {
		return -1
	}

	target := roll * total
	for _, i := range eligible {
		target -= st.Fishes[i].Kind.Rarity
		if target < 0 {
			return i
		}
	}
	return eligible[len(eligible)-1]
}

// duelingTick разрешает один ход дуэли натяжения.
func (g *Game) duelingTick() {
	st := g.state
	s := st.Session
	fish := s.Candidate

	delta := systems.TensionDelta(
		fish.Kind.Style,
		st.Reeling,
		st.Player.ReelFactor,
		systems.TensionParams{ReelStrength: g.cfg.Tuning.ReelStrength},
		g.rng,
	)

	switch s.Meter.Apply(delta, st.Reeling) {
	case domain.FishingOngoing:
		g.AddLog(fmt.Sprintf("Натяжение: %d/%d", s.Meter.Tension, s.Meter.MaxTension), "FISHING")

	case domain.FishingSuccess:
		st.Player.Inventory = append(st.Player.Inventory, fish.Kind)
		msg := fmt.Sprintf("Поймана %s!", fish.Kind.Name)
		if fish.Kind.Legendary {
			msg = fmt.Sprintf("ЛЕГЕНДА! %s ваша!", fish.Kind.Name)
		}
		g.AddLog(msg, "CAPTURE")
		logger.Log.WithField("species", fish.Kind.ID).Info("Capture")
		g.endSession()

	case domain.FishingEscape:
		// Сход: рыба возвращается в мир, в точку заброса.
		fish.Pos = s.Target
		st.Fishes = append(st.Fishes, *fish)
		g.AddLog("Леска провисла. Сход!", "FISHING")
		g.endSession()

	case domain.FishingBreak:
		st.Player.Line -= g.cfg.Tuning.LineDamage
		if st.Player.Line < 0 {
			st.Player.Line = 0
		}
		fish.Pos = s.Target
		st.Fishes = append(st.Fishes, *fish)
		g.AddLog(fmt.Sprintf("ОБРЫВ! Прочность лески: %d", st.Player.Line), "FISHING")
		g.endSession()
	}
}

func (g *Game) endSession() {
	g.state.Session = nil
	g.state.Mode = domain.ModeExploring
}
