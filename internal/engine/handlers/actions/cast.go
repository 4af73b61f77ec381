package actions

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
)

// HandleCast работает в два приема, как двухтактный курок:
// в режиме исследования открывает прицеливание (бесплатно),
// в режиме прицеливания подтверждает заброс (тратит ход).
func HandleCast(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State

	switch st.Mode {
	case domain.ModeFishing:
		return handlers.Rejected("Вы уже рыбачите."), nil

	case domain.ModeExploring:
		if st.Player.Line <= 0 {
			return handlers.Rejected("Леска порвана. Рыбалка окончена."), nil
		}
		if !fishInRange(ctx) {
			return handlers.Rejected("Вокруг нет рыбы."), nil
		}
		st.Mode = domain.ModeAiming
		st.AimTarget = st.Player.Pos
		return handlers.Result{Msg: "Выберите место заброса.", MsgType: "FISHING"}, nil

	case domain.ModeAiming:
		return confirmCast(ctx)
	}

	return handlers.Rejected("Сейчас не до рыбалки."), nil
}

// fishInRange сообщает, есть ли хоть одна рыба в радиусе заброса.
// Без живой рыбы прицеливание не открывается: пустая вода - пустой ход.
func fishInRange(ctx handlers.Context) bool {
	st := ctx.State
	for _, f := range st.Fishes {
		if st.Player.Pos.Chebyshev(f.Pos) <= ctx.Tuning.CastRange {
			return true
		}
	}
	return false
}

// confirmCast проверяет цель и создает сессию рыбалки.
func confirmCast(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	target := st.AimTarget

	if !st.World.TileAt(target).IsWater() {
		return handlers.Rejected("Наживка должна упасть в воду."), nil
	}
	if st.Player.Pos.Chebyshev(target) > ctx.Tuning.CastRange {
		return handlers.Rejected("Так далеко не забросить."), nil
	}

	// Таймер поклевки бросается здесь, в ходе заброса: ровно один
	// вызов rng, чтобы реплей сходился.
	wait := ctx.Tuning.WaitMin
	if spread := ctx.Tuning.WaitMax - ctx.Tuning.WaitMin; spread > 0 {
		wait += ctx.Rng.Intn(spread + 1)
	}

	st.Mode = domain.ModeFishing
	st.Session = &domain.FishingSession{
		Phase:    domain.PhaseCasting,
		Target:   target,
		CastPath: castPath(st.Player.Pos, target),
		Wait:     wait,
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Заброс на глубину %d м.", st.World.DepthAt(target)),
		MsgType: "FISHING",
		Acted:   true,
	}, nil
}

// castPath строит траекторию полета наживки (для рендера дуги на
// клиенте). Простой DDA от игрока к цели, без первой точки.
func castPath(from, to domain.Position) []domain.Position {
	steps := from.Chebyshev(to)
	if steps == 0 {
		return []domain.Position{to}
	}
	path := make([]domain.Position, 0, steps)
	for i := 1; i <= steps; i++ {
		path = append(path, domain.Position{
			X: from.X + (to.X-from.X)*i/steps,
			Y: from.Y + (to.Y-from.Y)*i/steps,
		})
	}
	return path
}
