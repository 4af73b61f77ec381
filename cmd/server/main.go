package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katuneko/lurhook/internal/config"
	"github.com/katuneko/lurhook/internal/data"
	"github.com/katuneko/lurhook/internal/engine"
	"github.com/katuneko/lurhook/internal/infrastructure/scores"
	"github.com/katuneko/lurhook/internal/infrastructure/storage"
	"github.com/katuneko/lurhook/internal/server"
	"github.com/katuneko/lurhook/internal/version"
	"github.com/katuneko/lurhook/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		port       string
		tuningPath string
		fishPath   string
		itemsPath  string
		loadPath   string
		replayPath string
		replayDir  string
		scoresPath string
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Run seed (0 for random)")
	flag.StringVar(&port, "port", "", "HTTP port (default: LURHOOK_PORT env or 8080)")
	flag.StringVar(&tuningPath, "config", "", "Path to tuning YAML (empty for defaults)")
	flag.StringVar(&fishPath, "fish", "assets/fish.json", "Path to fish catalog")
	flag.StringVar(&itemsPath, "items", "assets/items.json", "Path to item catalog")
	flag.StringVar(&loadPath, "load", "", "Path to a save file to resume")
	flag.StringVar(&replayPath, "replay", "", "Path to .lhrp replay file to simulate")
	flag.StringVar(&replayDir, "replay-dir", "replays", "Directory for finished-run replays")
	flag.StringVar(&scoresPath, "scores", "lurhook_scores.db", "Path to score archive (empty to disable)")
	flag.Parse()

	logger.Log.Info("Starting Lurhook...")
	logger.Log.Info(version.String())

	tuning, err := config.Load(tuningPath)
	if err != nil {
		logger.Log.Fatal("Tuning config error: ", err)
	}
	types, err := data.LoadFishTypes(fishPath)
	if err != nil {
		logger.Log.Fatal("Fish catalog error: ", err)
	}
	items, err := data.LoadItemTypes(itemsPath)
	if err != nil {
		logger.Log.Fatal("Item catalog error: ", err)
	}

	cfg := engine.NewConfig()
	cfg.Tuning = tuning
	cfg.Types = types
	cfg.Items = items

	// РЕЖИМ РЕПЛЕЯ: пересимулировать запись и выйти.
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		session, err := storage.NewReplayService(replayDir).Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}
		if _, err := engine.ReplayRun(*session, cfg); err != nil {
			logger.Log.Fatal("Replay diverged: ", err)
		}
		return
	}

	// 2. Инициализация ядра: новый забег или загрузка сейва.
	var game *engine.Game
	if loadPath != "" {
		var snap engine.SaveState
		if err := storage.LoadGame(loadPath, &snap); err != nil {
			logger.Log.Fatal("Failed to load save: ", err)
		}
		game = engine.RestoreGame(snap, types, items)
		logger.Log.Infof("📂 Resumed run from %s (turn %d)", loadPath, game.State().Clock)
	} else {
		if seed != 0 {
			cfg.Seed = seed
			logger.Log.Infof("🎲 Using explicit seed: %d", seed)
		} else {
			logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
		}
		game = engine.NewGame(cfg)
	}

	gameService := engine.NewService(game)
	gameService.Replays = storage.NewReplayService(replayDir)

	if scoresPath != "" {
		archive, err := scores.Open(scoresPath)
		if err != nil {
			logger.Log.Fatal("Score archive error: ", err)
		}
		defer archive.Close()
		gameService.Archive = archive
	}

	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if port == "" {
		port = os.Getenv("LURHOOK_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Прощальный сейв: забег можно продолжить флагом -load.
	if err := storage.SaveGame(gameService.SavePath, game.Snapshot()); err != nil {
		logger.Log.WithError(err).Error("Final save failed")
	}

	logger.Log.Info("Done.")
}
