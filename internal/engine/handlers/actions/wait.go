package actions

import "github.com/katuneko/lurhook/internal/engine/handlers"

// HandleWait пропускает ход. В фазе ожидания поклевки это
// основное занятие рыбака.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Acted: true}, nil
}
