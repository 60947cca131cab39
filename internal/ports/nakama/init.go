package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"trumpduel/internal/bot"
	"trumpduel/internal/config"
)

// InitModule wires RPCs and match handlers for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("InitModule: Could not load game config, using defaults: %v", err)
	}
	profilesPath := config.GetGameConfig().ProfilesPath
	if profilesPath == "" {
		profilesPath = "data/bot_profiles.json"
	}
	if err := bot.LoadProfiles(profilesPath); err != nil {
		logger.Warn("InitModule: Could not load bot profiles: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}
	if err := initializer.RegisterMatch(MatchNameTrumpDuel, NewMatch); err != nil {
		return err
	}

	logger.Info("TrumpDuel Go module loaded.")
	return nil
}
