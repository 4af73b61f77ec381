package actions

import (
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
	"github.com/katuneko/lurhook/internal/systems"
	"github.com/katuneko/lurhook/pkg/api"
)

// HandleMove обрабатывает шаг игрока или сдвиг прицела.
// В режиме прицеливания MOVE двигает курсор и хода НЕ тратит.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	st := ctx.State

	switch st.Mode {
	case domain.ModeFishing:
		return handlers.Rejected("Леска в воде. Подматывайте или ждите."), nil

	case domain.ModeAiming:
		next := systems.ClampToMap(st.AimTarget.Shift(p.Dx, p.Dy), st.World)
		if st.Player.Pos.Chebyshev(next) > ctx.Tuning.CastRange {
			return handlers.Rejected("Так далеко не забросить."), nil
		}
		st.AimTarget = next
		return handlers.Result{}, nil
	}

	res := systems.CalculateMove(st.Player.Pos, p.Dx, p.Dy, st.World)
	if !res.Moved {
		return handlers.Rejected("Край карты."), nil
	}
	st.Player.Pos = res.NewPos
	return handlers.Result{Acted: true}, nil
}
