package admin

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
	"github.com/katuneko/lurhook/internal/systems"
)

// TeleportPayload: { "x": 10, "y": 10 }
type TeleportPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HandleTeleport переносит игрока в точку (отладочный чит,
// доступен только через debug-эндпоинт).
func HandleTeleport(ctx handlers.Context, p TeleportPayload) (handlers.Result, error) {
	pos := systems.ClampToMap(domain.Position{X: p.X, Y: p.Y}, ctx.State.World)
	ctx.State.Player.Pos = pos
	return handlers.Result{Msg: fmt.Sprintf("Телепорт в (%d,%d).", pos.X, pos.Y), MsgType: "INFO"}, nil
}

// SpawnPayload: { "species": "minnow" }
type SpawnPayload struct {
	Species string `json:"species"`
}

// HandleSpawn подсаживает рыбу указанного вида рядом с игроком.
func HandleSpawn(ctx handlers.Context, p SpawnPayload) (handlers.Result, error) {
	for _, ft := range ctx.Types {
		if ft.ID != p.Species {
			continue
		}
		// Ищем воду вокруг игрока по расходящимся кольцам
		for r := 1; r < 12; r++ {
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					pos := ctx.State.Player.Pos.Shift(dx, dy)
					if ctx.State.World.TileAt(pos).IsWater() {
						ctx.State.Fishes = append(ctx.State.Fishes, domain.Fish{Kind: ft, Pos: pos})
						return handlers.Result{Msg: fmt.Sprintf("Подсажен %s.", ft.Name), MsgType: "INFO"}, nil
					}
				}
			}
		}
		return handlers.Result{Msg: "Вокруг нет воды.", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: fmt.Sprintf("Неизвестный вид: %s", p.Species), MsgType: "ERROR"}, nil
}
