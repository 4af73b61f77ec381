package engine

import (
	"encoding/json"
	"testing"

	"github.com/katuneko/lurhook/internal/config"
	"github.com/katuneko/lurhook/internal/domain"
)

func cast(g *Game) bool {
	return g.Advance(domain.Intent{Action: domain.ActionCast})
}

func reel(g *Game) bool {
	return g.Advance(domain.Intent{Action: domain.ActionReel})
}

func cancel(g *Game) bool {
	return g.Advance(domain.Intent{Action: domain.ActionCancel})
}

// Полный путь поимки: прицеливание -> заброс -> ожидание -> дуэль.
// Параметры подобраны так, что исход гарантирован границами бросков,
// а не удачей: карп (сила 10, Endurance) при максимуме 45 после трех
// подмоток оказывается в натяжении 18..24, что ниже порога 25 и выше
// нуля - успех ровно на третьей подмотке при любом зерне.
func TestFishing_FullCaptureFlow(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.BiteBase = 1.0 // поклевка гарантирована
		c.WaitMin, c.WaitMax = 1, 1
		c.TensionBase = 30
		c.StrengthFactor = 1.5
		c.CaptureThreshold = 25
		c.RequiredReels = 3
		c.ReelStrength = 10
	})

	// Прицел: два шага вправо до рыбной воды
	cast(g)
	move(g, 1, 0)
	move(g, 1, 0)
	if g.state.Mode != domain.ModeAiming {
		t.Fatalf("Expected aiming mode, got %v", g.state.Mode)
	}
	if g.state.Clock != 0 {
		t.Fatal("Aiming must be free")
	}

	// Подтверждение заброса: сессия создана, ход потрачен
	if !cast(g) {
		t.Fatal("Cast confirmation must consume a turn")
	}
	if g.state.Mode != domain.ModeFishing || g.state.Session == nil {
		t.Fatal("Confirmed cast must open a fishing session")
	}
	if g.state.Session.Phase != domain.PhaseWaiting {
		t.Fatalf("Cast turn must land the bait, phase is %v", g.state.Session.Phase)
	}

	// Один ход ожидания - и поклевка (таймер 1, шанс 1.0)
	wait(g)
	if g.state.Session == nil || g.state.Session.Phase != domain.PhaseDueling {
		t.Fatal("Bite must start the duel")
	}
	if g.state.Session.Candidate == nil {
		t.Fatal("Duel must have a hooked fish")
	}
	if len(g.state.Fishes) != 0 {
		t.Error("Hooked fish must leave the world")
	}
	if got := g.state.Session.Meter.Tension; got != 45 {
		t.Errorf("Expected starting tension 45 (30 + 10*1.5), got %d", got)
	}

	// Три подмотки до гарантированной поимки
	reel(g)
	reel(g)
	if g.state.Session == nil {
		t.Fatal("Duel must still be ongoing after two reels")
	}
	reel(g)

	if g.state.Session != nil || g.state.Mode != domain.ModeExploring {
		t.Fatal("Third reel must resolve the duel")
	}
	if len(g.state.Player.Inventory) != 1 {
		t.Fatalf("Capture must add the fish to the creel, got %d", len(g.state.Player.Inventory))
	}
	if g.state.Player.Inventory[0].ID != "carp" {
		t.Errorf("Expected carp, got %s", g.state.Player.Inventory[0].ID)
	}
}

func TestFishing_NoBiteClosesSession(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.BiteBase = 0 // поклевка невозможна
		c.WaitMin, c.WaitMax = 1, 1
	})

	cast(g)
	move(g, 1, 0)
	move(g, 1, 0)
	cast(g)
	wait(g)

	if g.state.Session != nil {
		t.Error("Expired wait without a bite must close the session")
	}
	if g.state.Mode != domain.ModeExploring {
		t.Errorf("Expected exploring mode, got %v", g.state.Mode)
	}
	if len(g.state.Fishes) != 1 {
		t.Error("The fish must remain in the world")
	}
}

// hookFish вручную выставляет дуэль: рыба на крючке, шкала задана.
func hookFish(g *Game, style domain.FightStyle, tension, maxTension int) {
	kind := domain.FishType{ID: "test", Name: "Тест", Rarity: 0.5, Strength: 5, MaxDepth: 100, Style: style}
	fish := domain.Fish{Kind: kind, Pos: domain.Position{X: g.state.World.Width/2 + 2, Y: 8}}

	meter := domain.NewTensionMeter(maxTension, g.cfg.Tuning.CaptureThreshold, g.cfg.Tuning.RequiredReels)
	meter.Tension = tension

	g.state.Mode = domain.ModeFishing
	g.state.Session = &domain.FishingSession{
		Phase:     domain.PhaseDueling,
		Target:    fish.Pos,
		Candidate: &fish,
		Meter:     meter,
	}
}

func TestFishing_BreakDamagesLine(t *testing.T) {
	g := newTestGame(t, nil)
	g.state.Fishes = nil
	// Endurance тянет +1..+3 каждый ход: обрыв гарантирован
	hookFish(g, domain.FightEndurance, 44, 45)

	wait(g)
	if g.state.Session != nil {
		t.Fatal("Tension over max must break the line")
	}
	if got := g.state.Player.Line; got != 90 {
		t.Errorf("Break must cost line durability: expected 90, got %d", got)
	}
	if len(g.state.Fishes) != 1 {
		t.Error("The fish must return to the world after a break")
	}
	if len(g.state.Player.Inventory) != 0 {
		t.Error("A break must not award the fish")
	}
}

func TestFishing_SlackLineEscapes(t *testing.T) {
	g := newTestGame(t, nil)
	g.state.Fishes = nil
	// Evasive без подмотки сбрасывает 2..5 натяжения: сход гарантирован
	hookFish(g, domain.FightEvasive, 2, 45)

	wait(g)
	if g.state.Session != nil {
		t.Fatal("Tension at zero must end the duel")
	}
	if len(g.state.Fishes) != 1 {
		t.Error("The escaped fish must return to the world")
	}
	if g.state.Player.Line != 100 {
		t.Error("An escape must not damage the line")
	}
}

func TestFishing_CastNeedsFishNearby(t *testing.T) {
	g := newTestGame(t, nil)

	// Пустая вода: прицеливание даже не открывается
	g.state.Fishes = nil
	if cast(g) {
		t.Fatal("CAST with no fish around must be rejected")
	}
	if g.state.Mode != domain.ModeExploring || g.state.Session != nil {
		t.Error("Rejected cast must leave the mode untouched")
	}
	if g.state.Clock != 0 {
		t.Error("Rejected cast must not advance the clock")
	}

	// Рыба есть, но вне радиуса заброса - тоже отказ
	g2 := newTestGame(t, func(c *config.Tuning) {
		c.CastRange = 2
	})
	if cast(g2) {
		t.Error("CAST with all fish out of range must be rejected")
	}
	if g2.state.Mode != domain.ModeExploring {
		t.Errorf("Expected exploring mode, got %v", g2.state.Mode)
	}
}

func TestFishing_CancelAimIsFreeByDefault(t *testing.T) {
	g := newTestGame(t, nil)

	cast(g)
	if g.state.Mode != domain.ModeAiming {
		t.Fatalf("Expected aiming mode, got %v", g.state.Mode)
	}
	if cancel(g) {
		t.Error("Free cancel must not report a spent turn")
	}
	if g.state.Mode != domain.ModeExploring {
		t.Errorf("Cancel must leave aiming, got %v", g.state.Mode)
	}
	if g.state.Clock != 0 {
		t.Errorf("Default aim cancel must be free, clock is %d", g.state.Clock)
	}
}

func TestFishing_CancelAimCostsTurnWhenConfigured(t *testing.T) {
	g := newTestGame(t, func(c *config.Tuning) {
		c.AimCancelCostsTurn = true
	})

	cast(g)
	if !cancel(g) {
		t.Fatal("Configured aim cancel must consume a turn")
	}
	if g.state.Mode != domain.ModeExploring {
		t.Errorf("Cancel must leave aiming, got %v", g.state.Mode)
	}
	if g.state.Clock != 1 {
		t.Errorf("Configured aim cancel must cost exactly one turn, clock is %d", g.state.Clock)
	}
}

func TestFishing_CancelDuelReleasesFish(t *testing.T) {
	g := newTestGame(t, nil)
	g.state.Fishes = nil
	hookFish(g, domain.FightEndurance, 30, 45)
	clock := g.state.Clock

	if !cancel(g) {
		t.Fatal("Reeling in mid-duel must consume a turn")
	}
	if g.state.Session != nil || g.state.Mode != domain.ModeExploring {
		t.Fatal("Cancel must close the session")
	}
	if len(g.state.Fishes) != 1 {
		t.Fatal("The abandoned fish must return to the world")
	}
	// Рыба всплывает в точке заброса; этим же ходом экология успевает
	// сдвинуть ее на соседний тайл
	target := domain.Position{X: g.state.World.Width/2 + 2, Y: 8}
	if target.Chebyshev(g.state.Fishes[0].Pos) > 2 {
		t.Errorf("The fish must surface near the cast target, got %v", g.state.Fishes[0].Pos)
	}
	if len(g.state.Player.Inventory) != 0 {
		t.Error("An abandoned duel must not award the fish")
	}
	if g.state.Player.Line != 100 {
		t.Error("An abandoned duel must not damage the line")
	}
	if g.state.Clock != clock+1 {
		t.Errorf("Cancel during a duel costs a turn, clock is %d", g.state.Clock)
	}
}

func TestFishing_MidDuelSaveRestoresSession(t *testing.T) {
	g := newTestGame(t, nil)
	g.state.Fishes = nil
	hookFish(g, domain.FightEndurance, 30, 45)
	g.state.Session.Meter.Reels = 2

	// Через JSON, как делает storage: проверяем сериализуемость дуэли
	raw, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("Marshal snapshot: %v", err)
	}
	var snap SaveState
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("Unmarshal snapshot: %v", err)
	}
	restored := RestoreGame(snap, g.cfg.Types, g.cfg.Items)

	s := restored.State().Session
	if s == nil || s.Phase != domain.PhaseDueling {
		t.Fatal("Restored game must resume the duel")
	}
	if s.Meter.Tension != 30 || s.Meter.Reels != 2 {
		t.Errorf("Meter must survive the save: %+v", s.Meter)
	}
	if s.Candidate == nil || s.Candidate.Kind.ID != "test" {
		t.Error("Hooked fish must survive the save")
	}

	// Загруженная дуэль доигрывается обычным порядком
	restored.Advance(domain.Intent{Action: domain.ActionReel})
	if restored.State().Clock != g.state.Clock+1 {
		t.Error("Restored game must keep advancing from the saved turn")
	}
}
