package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"trumpduel/internal/bot"
)

// CreateDuelRequest is the optional payload of RpcCreateDuel.
type CreateDuelRequest struct {
	Difficulty string `json:"difficulty"`
}

// CreateDuelResponse is returned to clients after a duel is created.
type CreateDuelResponse struct {
	MatchID    string       `json:"match_id"`
	Difficulty bot.Level    `json:"difficulty,omitempty"`
	Profile    *bot.Profile `json:"profile,omitempty"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcCreateDuel, rpcCreateDuel)
}

func rpcCreateDuel(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req CreateDuelRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			logger.Warn("CreateDuel [User:%s]: bad payload: %v", userID, err)
			return "", runtime.NewError("invalid payload", 3)
		}
	}

	params := map[string]interface{}{}
	resp := CreateDuelResponse{}
	if req.Difficulty != "" {
		parsed, err := bot.ParseLevel(req.Difficulty)
		if err != nil {
			return "", runtime.NewError(err.Error(), 3)
		}
		profile := bot.ProfileFor(parsed)
		resp.Difficulty = parsed
		resp.Profile = &profile
		params["difficulty"] = string(parsed)
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameTrumpDuel, params)
	if err != nil {
		logger.Error("CreateDuel [User:%s]: MatchCreate error: %v", userID, err)
		return "", fmt.Errorf("create duel: %w", err)
	}
	logger.Info("CreateDuel [User:%s]: Created duel %s", userID, matchID)

	resp.MatchID = matchID
	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
