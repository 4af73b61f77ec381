package actions

import (
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
)

// HandleCancel выходит из прицеливания или сматывает леску.
// Отмена прицеливания по умолчанию бесплатна (настраивается),
// смотка заброшенной лески всегда тратит ход.
func HandleCancel(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State

	switch st.Mode {
	case domain.ModeAiming:
		st.Mode = domain.ModeExploring
		return handlers.Result{
			Msg:     "Вы опускаете удочку.",
			MsgType: "INFO",
			Acted:   ctx.Tuning.AimCancelCostsTurn,
		}, nil

	case domain.ModeFishing:
		msg := "Вы сматываете леску. Пусто."
		// Бросить дуэль - значит дать слабину: рыба на крючке
		// срывается и возвращается в воду. Исход тот же сход,
		// других выходов из дуэли нет.
		if s := st.Session; s.Phase == domain.PhaseDueling && s.Candidate != nil {
			fish := *s.Candidate
			fish.Pos = s.Target
			st.Fishes = append(st.Fishes, fish)
			msg = "Вы ослабили леску. Сход!"
		}
		st.Session = nil
		st.Mode = domain.ModeExploring
		return handlers.Result{
			Msg:     msg,
			MsgType: "FISHING",
			Acted:   true,
		}, nil
	}

	return handlers.Rejected("Отменять нечего."), nil
}
