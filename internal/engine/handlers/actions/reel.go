package actions

import (
	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
)

// HandleReel отмечает подмотку в текущем ходу. Сама арифметика
// натяжения выполняется планировщиком в тике рыбалки, после
// хендлера: подмотка и рывок рыбы разрешаются одним ходом.
func HandleReel(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State

	if st.Mode != domain.ModeFishing || st.Session == nil {
		return handlers.Rejected("Подматывать нечего."), nil
	}
	if st.Session.Phase != domain.PhaseDueling {
		return handlers.Rejected("Рыба еще не клюнула."), nil
	}

	st.Reeling = true
	return handlers.Result{Acted: true}, nil
}
