package main

import (
	"flag"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"trumpduel/internal/bot"
	"trumpduel/internal/config"
	"trumpduel/internal/logging"
	"trumpduel/internal/ports/ws"
)

func main() {
	configPath := flag.String("config", "data/game_config.json", "game config file")
	flag.Parse()

	logger := logging.New(os.Stderr, "info")
	if err := config.LoadDotEnv(".env", ".env.local"); err != nil {
		logger.Warn("%v", err)
	}
	if err := config.LoadGameConfig(*configPath); err != nil {
		logger.Warn("Using default game config: %v", err)
	}
	cfg := config.ApplyEnv(config.GetGameConfig(), os.LookupEnv)
	logger = logging.New(os.Stderr, cfg.LogLevel)

	if cfg.ProfilesPath != "" {
		if err := bot.LoadProfiles(cfg.ProfilesPath); err != nil {
			logger.Warn("Using built-in bot profiles: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h := &ws.Handler{Config: cfg, Logger: logger}
	h.Register(e)

	logger.Info("Trump Duel server listening on %s", cfg.ListenAddr)
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
