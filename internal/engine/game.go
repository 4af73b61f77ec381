package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/ecology"
	"github.com/katuneko/lurhook/internal/engine/handlers"
	"github.com/katuneko/lurhook/internal/engine/handlers/actions"
	"github.com/katuneko/lurhook/internal/systems"
	"github.com/katuneko/lurhook/pkg/api"
	"github.com/katuneko/lurhook/pkg/island"
	"github.com/katuneko/lurhook/pkg/logger"
)

// Сегменты суток, по кругу. Смена каждые time_segment_turns ходов.
var daySegments = [4]string{"Dawn", "Day", "Dusk", "Night"}

// Game - планировщик хода. Единственный владелец State: весь мир
// двигается только изнутри Advance, строго в одном порядке.
type Game struct {
	cfg   Config
	state *domain.State
	rng   *rand.Rand

	handlers map[domain.ActionType]handlers.HandlerFunc

	// Logs - сообщения, накопленные с последней рассылки.
	Logs []api.LogEntry

	// Replay - запись принятых интентов текущего забега.
	Replay domain.ReplaySession
}

// NewGame генерирует мир и собирает свежий забег.
func NewGame(cfg Config) *Game {
	t := cfg.Tuning
	world := island.Generate(cfg.Seed, t.MapWidth, t.MapHeight)
	rng := rand.New(rand.NewSource(cfg.Seed))

	player := domain.Player{
		Pos:        island.StartPosition(world),
		HP:         t.MaxHP,
		Hunger:     t.MaxHunger,
		Line:       t.MaxLine,
		ReelFactor: 1.0,
	}
	outfit(&player, cfg.Items)

	st := &domain.State{
		World:     world,
		Player:    player,
		Fishes:    ecology.SpawnPopulation(world, cfg.Types, t.FishCount, rng),
		Mode:      domain.ModeExploring,
		TimeOfDay: daySegments[0],
	}

	g := &Game{
		cfg:   cfg,
		state: st,
		rng:   rng,
		Replay: domain.ReplaySession{
			Seed:      cfg.Seed,
			Timestamp: time.Now().Unix(),
		},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	g.registerHandlers()

	logger.Log.WithField("seed", cfg.Seed).Info("New run started")
	return g
}

func (g *Game) registerHandlers() {
	g.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	g.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	g.handlers[domain.ActionCast] = handlers.WithEmptyPayload(actions.HandleCast)
	g.handlers[domain.ActionCancel] = handlers.WithEmptyPayload(actions.HandleCancel)
	g.handlers[domain.ActionReel] = handlers.WithEmptyPayload(actions.HandleReel)
	g.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	g.handlers[domain.ActionEat] = handlers.WithEmptyPayload(actions.HandleEat)
	g.handlers[domain.ActionCook] = handlers.WithEmptyPayload(actions.HandleCook)
	g.handlers[domain.ActionSnack] = handlers.WithEmptyPayload(actions.HandleSnack)
	g.handlers[domain.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	g.handlers[domain.ActionEndRun] = handlers.WithEmptyPayload(actions.HandleEndRun)
}

// outfit выдает стартовое снаряжение из каталога: первый предмет
// каждого вида снасти надевается, остальное ложится в рюкзак,
// еда превращается в запас консервов.
func outfit(p *domain.Player, items []domain.ItemType) {
	equipped := map[domain.ItemKind]bool{}
	for _, it := range items {
		if it.Kind == domain.ItemFood {
			p.CannedFood++
			continue
		}
		if !equipped[it.Kind] {
			p.Equip(it)
			equipped[it.Kind] = true
			continue
		}
		p.Items = append(p.Items, it)
	}
}

// State возвращает состояние забега. Только для чтения снаружи.
func (g *Game) State() *domain.State {
	return g.state
}

// Advance обрабатывает один интент. Возвращает true, если интент
// принят и мир сдвинулся на ход.
//
// Порядок шага зафиксирован и менять его нельзя - от него зависит
// порядок выборок rng, а значит и воспроизводимость реплеев:
// хендлер -> тик рыбалки -> движение рыб -> события -> метаболизм.
func (g *Game) Advance(in domain.Intent) bool {
	st := g.state

	if st.Mode == domain.ModeEnd && in.Action != domain.ActionInit {
		g.AddLog("Забег окончен. Начните новый.", "ERROR")
		return false
	}

	h, ok := g.handlers[in.Action]
	if !ok {
		g.AddLog(fmt.Sprintf("Неизвестная команда: %s", in.Action), "ERROR")
		return false
	}

	st.Reeling = false
	res, err := h(g.HandlerContext(), in.Payload)
	if err != nil {
		// Кривой payload: интент отклонен, мир не тронут.
		g.AddLog(err.Error(), "ERROR")
		logger.Log.WithField("action", in.Action.String()).Warn(err)
		return false
	}
	if res.Msg != "" {
		g.AddLog(res.Msg, res.MsgType)
	}
	if res.MsgType == "ERROR" {
		// Отклонено: состояние не тронуто, в реплей не попадает.
		return false
	}

	// Принятые интенты пишутся в реплей ВСЕ, включая бесплатные
	// (сдвиг прицела): они мутируют состояние, без них реплей
	// разойдется с партией.
	g.Replay.Actions = append(g.Replay.Actions, domain.ReplayAction{
		Tick:    st.Clock,
		Action:  in.Action,
		Payload: in.Payload,
	})
	if !res.Acted {
		return false
	}

	if st.Session != nil {
		g.fishingTick()
	}
	ecology.Update(st.World, st.Fishes, g.tideDrift(), g.rng)
	g.resolveEvents()
	g.metabolize()

	st.Clock++
	st.TimeOfDay = daySegments[(st.Clock/g.cfg.Tuning.TimeSegmentTurns)%len(daySegments)]

	g.checkDeath()
	return true
}

func (g *Game) HandlerContext() handlers.Context {
	return handlers.Context{
		State:  g.state,
		Tuning: &g.cfg.Tuning,
		Rng:    g.rng,
		Types:  g.cfg.Types,
		Items:  g.cfg.Items,
	}
}

// tideDrift - снос течением. Прилив и отлив сменяются каждые
// tide_turns ходов и гоняют рыбу вдоль оси X.
func (g *Game) tideDrift() domain.Position {
	if (g.state.Clock/g.cfg.Tuning.TideTurns)%2 == 0 {
		return domain.Position{X: 1}
	}
	return domain.Position{X: -1}
}

// metabolize - голод за ход. На нуле сытости тает уже здоровье.
func (g *Game) metabolize() {
	p := &g.state.Player
	if p.Hunger <= 0 {
		p.HP--
		g.AddLog("Вас шатает от голода. -1 HP", "EVENT")
		return
	}
	p.Hunger -= g.cfg.Tuning.HungerDecay
	if p.Hunger < 0 {
		p.Hunger = 0
	}
}

// checkDeath завершает забег, если здоровье кончилось.
func (g *Game) checkDeath() {
	st := g.state
	if st.Mode == domain.ModeEnd || st.Player.HP > 0 {
		return
	}
	st.Player.HP = 0
	st.Session = nil
	st.Mode = domain.ModeEnd
	st.FinalScore = systems.Score(st.Player.Inventory)
	g.AddLog(fmt.Sprintf("Вы погибли. Счет: %d.", st.FinalScore), "EVENT")
	logger.Log.WithField("score", st.FinalScore).Info("Run ended: player died")
}

func (g *Game) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	g.Logs = append(g.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d-%d", g.state.Clock, len(g.Logs)),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// DrainLogs отдает накопленные сообщения и очищает буфер.
func (g *Game) DrainLogs() []api.LogEntry {
	logs := g.Logs
	g.Logs = nil
	return logs
}
