package engine

import (
	"encoding/json"

	"github.com/katuneko/lurhook/internal/domain"
	"github.com/katuneko/lurhook/internal/infrastructure/scores"
	"github.com/katuneko/lurhook/internal/infrastructure/storage"
	"github.com/katuneko/lurhook/internal/network"
	"github.com/katuneko/lurhook/pkg/api"
	"github.com/katuneko/lurhook/pkg/logger"
)

// GameService - обвязка движка для внешнего мира: принимает команды
// из WebSocket, прокачивает их через Game и рассылает снимки.
// Все мутации состояния происходят в одной горутине RunLoop,
// поэтому самому движку блокировки не нужны.
type GameService struct {
	Game *Game
	Hub  *network.Broadcaster

	CommandChan chan api.ClientCommand

	// SavePath - путь для команды SAVE по умолчанию.
	SavePath string

	// Replays - каталог для записей завершенных забегов.
	// Пустая строка отключает запись.
	Replays *storage.ReplayService

	// Archive - журнал результатов. nil отключает архивирование.
	Archive *scores.Archive

	archived bool
}

func NewService(game *Game) *GameService {
	return &GameService{
		Game:        game,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan api.ClientCommand, 100),
		SavePath:    "lurhook.save",
	}
}

func (s *GameService) Start() {
	go s.RunLoop()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	s.CommandChan <- cmd
}

// RunLoop - единственный потребитель CommandChan.
func (s *GameService) RunLoop() {
	logger.Log.Info("Game loop started")

	for cmd := range s.CommandChan {
		action := domain.ParseAction(cmd.Action)

		switch action {
		case domain.ActionUnknown:
			logger.Log.WithField("action", cmd.Action).Warn("Unknown action")
			continue

		case domain.ActionSave:
			s.handleSave(cmd.Payload)

		default:
			s.Game.Advance(domain.Intent{Action: action, Payload: cmd.Payload})
			s.afterTurn()
		}

		msgType := "UPDATE"
		if action == domain.ActionInit {
			msgType = "INIT"
		}
		s.Hub.Broadcast(*s.Game.BuildSnapshot(msgType))
	}
}

// handleSave пишет слепок забега на диск. Хода не тратит.
func (s *GameService) handleSave(raw json.RawMessage) {
	path := s.SavePath
	var p api.SavePayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err == nil && p.Path != "" {
			path = p.Path
		}
	}

	if err := storage.SaveGame(path, s.Game.Snapshot()); err != nil {
		s.Game.AddLog("Сохранить не удалось: "+err.Error(), "ERROR")
		logger.Log.WithError(err).Error("Save failed")
		return
	}
	s.Game.AddLog("Игра сохранена.", "INFO")
	logger.Log.WithField("path", path).Info("Game saved")
}

// afterTurn выполняет побочные эффекты конца забега ровно один раз.
func (s *GameService) afterTurn() {
	st := s.Game.State()
	if st.Mode != domain.ModeEnd || s.archived {
		return
	}
	s.archived = true

	if s.Archive != nil {
		legendary := false
		for _, fish := range st.Player.Inventory {
			if fish.Legendary {
				legendary = true
				break
			}
		}
		if err := s.Archive.Record(scores.Run{
			Seed:      s.Game.Replay.Seed,
			Score:     st.FinalScore,
			Turns:     st.Clock,
			Catches:   len(st.Player.Inventory),
			Legendary: legendary,
		}); err != nil {
			logger.Log.WithError(err).Error("Score archive write failed")
		}
	}

	if s.Replays != nil {
		if err := s.Replays.Save(&s.Game.Replay); err != nil {
			logger.Log.WithError(err).Error("Replay write failed")
		}
	}
}
