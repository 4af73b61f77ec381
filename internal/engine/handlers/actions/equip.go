package actions

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
	"github.com/katuneko/lurhook/pkg/api"
)

// HandleEquip обрабатывает команду EQUIP - смену удилища, катушки
// или наживки. Вытесненная снасть возвращается в рюкзак.
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	st := ctx.State
	if st.Mode == domain.ModeFishing {
		return handlers.Rejected("Менять снасть во время вываживания поздно."), nil
	}

	idx := -1
	for i, it := range st.Player.Items {
		if it.ID == p.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return handlers.Rejected("Такой снасти в рюкзаке нет."), nil
	}

	item := st.Player.Items[idx]
	if item.Kind == domain.ItemFood {
		return handlers.Rejected("Это не снасть. Попробуйте SNACK."), nil
	}

	st.Player.Items = append(st.Player.Items[:idx], st.Player.Items[idx+1:]...)
	if old := st.Player.Equip(item); old != nil {
		st.Player.Items = append(st.Player.Items, *old)
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Экипировано: %s.", item.Name),
		MsgType: "INFO",
		Acted:   true,
	}, nil
}
