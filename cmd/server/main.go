package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tombs-server/internal/agent"
	"tombs-server/internal/engine"
	"tombs-server/internal/infrastructure/storage"
	"tombs-server/internal/server"
	"tombs-server/internal/version"
	"tombs-server/pkg/api"
	"tombs-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var loadPath string
	var runBot bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&loadPath, "load", "", "Path to .tomb snapshot file to restore")
	flag.BoolVar(&runBot, "bot", false, "Run a headless bot instead of waiting for a client")
	flag.Parse()

	logger.Log.Info("Starting Tombs of the Ancient Kings...")
	logger.Log.Info(version.String())

	saves := storage.NewSnapshotService("saves")

	var gameService *engine.GameService
	var err error

	// РЕЖИМ ЗАГРУЗКИ
	if loadPath != "" {
		logger.Log.Infof("💾 Restoring world from %s", loadPath)

		snap, loadErr := saves.Load(loadPath)
		if loadErr != nil {
			logger.Log.Fatal("Failed to load snapshot: ", loadErr)
		}

		gameService, err = engine.RestoreService(snap)
		if err != nil {
			logger.Log.Fatal("Failed to restore world: ", err)
		}
	} else {
		// Формируем конфиг
		cfg := engine.NewConfig()
		if seed != 0 {
			cfg.Seed = seed
			logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
		} else {
			logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
		}

		gameService, err = engine.NewService(cfg)
		if err != nil {
			logger.Log.Fatal("Failed to create world: ", err)
		}
	}

	port := os.Getenv("TR_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService.Start()

	if runBot {
		logger.Log.Info("🤖 Mode: Headless Bot")
		bot := agent.NewBot(gameService.Player.ID, gameService, gameService.Config.Seed)
		go bot.Run()
		// Первый кадр состояния, от него бот и пляшет.
		gameService.ProcessCommand(api.ClientCommand{
			Token:  gameService.Player.ID.Wire(),
			Action: "INIT",
		})
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сохраняем текущий мир
	if path, saveErr := saves.Save(gameService.Snapshot()); saveErr != nil {
		logger.Log.Error("Failed to save snapshot: ", saveErr)
	} else {
		logger.Log.Infof("World saved to %s", path)
	}

	logger.Log.Info("Done.")
}
