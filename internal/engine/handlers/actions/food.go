package actions

import (
	"fmt"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/engine/handlers"
)

// HandleEat съедает последнюю пойманную рыбу сырой. Быстро, но
// сытости мало, и рыба больше не пойдет в счет.
func HandleEat(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	fish, ok := popCatch(&st.Player)
	if !ok {
		return handlers.Rejected("В садке пусто."), nil
	}

	feed(ctx, ctx.Tuning.EatRawFish)
	return handlers.Result{
		Msg:     fmt.Sprintf("Вы съели %s сырой. Сойдет.", fish.Name),
		MsgType: "INFO",
		Acted:   true,
	}, nil
}

// HandleCook жарит рыбу на костре. Только на суше: в воде костер
// не развести. Сытнее сырой и подлечивает.
func HandleCook(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	if st.World.TileAt(st.Player.Pos) != domain.TileLand {
		return handlers.Rejected("Костер можно развести только на суше."), nil
	}
	fish, ok := popCatch(&st.Player)
	if !ok {
		return handlers.Rejected("В садке пусто."), nil
	}

	feed(ctx, ctx.Tuning.EatCookedFish)
	st.Player.HP += ctx.Tuning.CookHPRestore
	if st.Player.HP > ctx.Tuning.MaxHP {
		st.Player.HP = ctx.Tuning.MaxHP
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Жареная %s. Жизнь налаживается.", fish.Name),
		MsgType: "INFO",
		Acted:   true,
	}, nil
}

// HandleSnack открывает банку консервов.
func HandleSnack(ctx handlers.Context) (handlers.Result, error) {
	st := ctx.State
	if st.Player.CannedFood <= 0 {
		return handlers.Rejected("Консервы кончились."), nil
	}
	st.Player.CannedFood--

	feed(ctx, ctx.Tuning.EatCannedFood)
	return handlers.Result{
		Msg:     "Банка сардин. Осталось: " + fmt.Sprint(ctx.State.Player.CannedFood),
		MsgType: "INFO",
		Acted:   true,
	}, nil
}

// popCatch извлекает последнюю пойманную рыбу из садка.
func popCatch(p *domain.Player) (domain.FishType, bool) {
	if len(p.Inventory) == 0 {
		return domain.FishType{}, false
	}
	fish := p.Inventory[len(p.Inventory)-1]
	p.Inventory = p.Inventory[:len(p.Inventory)-1]
	return fish, true
}

// feed добавляет сытость с прижимом к максимуму.
func feed(ctx handlers.Context, amount int) {
	p := &ctx.State.Player
	p.Hunger += amount
	if p.Hunger > ctx.Tuning.MaxHunger {
		p.Hunger = ctx.Tuning.MaxHunger
	}
}
