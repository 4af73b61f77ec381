package actions

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
	"github.com/katuneko/lurhook/internal/systems"
)

// HandleEndRun добровольно завершает забег и фиксирует счет.
func HandleEndRun(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	st.Session = nil
	st.Mode = domain.ModeEnd
	st.FinalScore = systems.Score(st.Player.Inventory)

	return handlers.Result{
		Msg:     fmt.Sprintf("Забег окончен. Счет: %d.", st.FinalScore),
		MsgType: "INFO",
		Acted:   true,
	}, nil
}
