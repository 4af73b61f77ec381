package actions

import "github.com/katuneko/lurhook/internal/engine/handlers"

// HandleInit не тратит ход: клиент просто получает первый снимок мира.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Вы очнулись на берегу. Удочка все еще при вас.",
		MsgType: "INFO",
	}, nil
}
