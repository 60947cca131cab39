package nakama

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"trumpduel/internal/app"
	"trumpduel/internal/bot"
	"trumpduel/internal/config"
	"trumpduel/internal/domain"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	HumanID   string              `json:"human_id"`
	Tick      int64               `json:"tick"`
	TickRate  int                 `json:"tick_rate"`
	Presence  runtime.Presence    `json:"-"`
	// LeftTick is the tick the human disconnected at, 0 while connected.
	LeftTick  int64               `json:"left_tick"`
	Engine    *app.Engine         `json:"-"`
	Scheduler *app.QueueScheduler `json:"-"`
	lastLabel string
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created. The optional "difficulty"
// param picks the computer level.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing duel.")

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg := config.ApplyEnv(config.GetGameConfig(), config.MapLookup(env))

	level := bot.Level(cfg.DefaultDifficulty)
	if v, ok := params["difficulty"].(string); ok && v != "" {
		level = bot.Level(v)
	}
	parsed, err := bot.ParseLevel(string(level))
	if err != nil {
		logger.Warn("MatchInit: %v, using medium", err)
		parsed = bot.LevelMedium
	}

	sched := app.NewQueueScheduler()
	engine, err := app.NewEngine(app.Options{
		Scheduler:  sched,
		Pacing:     app.PacingFrom(cfg.Pacing),
		Difficulty: parsed,
		LogLimit:   cfg.LogLimit,
	})
	if err != nil {
		logger.Error("MatchInit: Failed to create engine: %v", err)
		return nil, 0, ""
	}
	engine.Events()

	state := &MatchState{
		TickRate:  cfg.TickRate,
		Engine:    engine,
		Scheduler: sched,
	}
	label, err := encodeLabel(domain.ComputeLabel(engine.State(), false))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	state.lastLabel = label

	logger.Info("MatchInit: Duel %s created at %s difficulty.", engine.GameID(), parsed)
	return state, cfg.TickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	if matchState.HumanID != "" && matchState.HumanID != presence.GetUserId() {
		return state, false, "match_full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		if matchState.HumanID != "" && matchState.HumanID != p.GetUserId() {
			logger.Warn("MatchJoin: User %s joined but the seat belongs to %s.", p.GetUserId(), matchState.HumanID)
			continue
		}
		if matchState.HumanID == "" {
			logger.Info("MatchJoin: User %s took the seat.", p.GetUserId())
		} else {
			logger.Info("MatchJoin: User %s rejoined.", p.GetUserId())
		}
		matchState.HumanID = p.GetUserId()
		matchState.Presence = p
		matchState.LeftTick = 0
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendState(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave keeps the seat for RejoinGraceSeconds after its human leaves.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}
	for _, p := range presences {
		if p.GetUserId() == matchState.HumanID {
			logger.Info("MatchLeave: User %s left duel %s, holding the seat.", p.GetUserId(), matchState.Engine.GameID())
			matchState.Presence = nil
			matchState.LeftTick = max(tick, 1)
		}
	}
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	if matchState.LeftTick > 0 && tick-matchState.LeftTick >= graceTicks(matchState.TickRate) {
		logger.Info("MatchLoop: User %s did not return, terminating duel %s.", matchState.HumanID, matchState.Engine.GameID())
		return nil
	}

	for _, msg := range messages {
		if msg.GetUserId() != matchState.HumanID {
			logger.Warn("MatchLoop: Ignoring op %d from non-seated user %s", msg.GetOpCode(), msg.GetUserId())
			continue
		}
		mh.handleMessage(matchState, dispatcher, logger, msg)
	}

	matchState.Scheduler.Advance(tickTime(tick, matchState.TickRate))
	mh.flush(matchState, dispatcher, logger)
	return matchState
}

// tickTime maps a match tick to the scheduler clock.
func tickTime(tick int64, rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Duration(tick) * time.Second / time.Duration(rate)
}

func graceTicks(rate int) int64 {
	if rate <= 0 {
		rate = 1
	}
	return int64(RejoinGraceSeconds * rate)
}

func (mh *matchHandler) handleMessage(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	cmd, err := decodeCommand(msg.GetOpCode(), msg.GetData())
	if err != nil {
		logger.Warn("handleMessage: User %s sent a bad message: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetOpCode(), ErrCodeBadRequest, err.Error())
		return
	}
	if err := state.Engine.Execute(cmd); err != nil {
		logger.Debug("handleMessage: %s rejected for %s: %v", cmd.Kind, msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetOpCode(), errorCode(err), err.Error())
	}
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, app.ErrNotSelector):
		return ErrCodeForbidden
	case errors.Is(err, app.ErrWrongPhase),
		errors.Is(err, app.ErrGameOver),
		errors.Is(err, app.ErrNotPlaying),
		errors.Is(err, app.ErrNotYourTurn),
		errors.Is(err, app.ErrResolvingTrick):
		return ErrCodeConflict
	default:
		return ErrCodeBadRequest
	}
}

// flush delivers drained engine events, then a fresh snapshot when anything
// happened.
func (mh *matchHandler) flush(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	events := state.Engine.Events()
	if len(events) == 0 {
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.sendState(state, dispatcher, logger)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch ev.Kind {
	case app.EventRoundEnded:
		p := ev.Payload.(app.RoundEndedPayload)
		logger.Info("Duel %s: round %d ended %d-%d", state.Engine.GameID(), p.Round, p.PlayerTotal, p.ComputerTotal)
	case app.EventGameOver:
		p := ev.Payload.(app.GameOverPayload)
		logger.Info("Duel %s: %s won", state.Engine.GameID(), p.Winner)
	}
	mh.send(state, dispatcher, logger, OpEvent, ev)
}

func (mh *matchHandler) sendState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.send(state, dispatcher, logger, OpState, state.Engine.Snapshot())
}

// sendError sends an ErrorMessage to the seated human.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, code int, message string) {
	mh.send(state, dispatcher, logger, OpError, ErrorMessage{Code: code, Message: message, OpCode: opCode})
}

func (mh *matchHandler) send(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, v any) {
	if state.Presence == nil {
		return
	}
	bytes, err := encodeMessage(v)
	if err != nil {
		logger.Error("Failed to marshal op %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, bytes, []runtime.Presence{state.Presence}, nil, true); err != nil {
		logger.Error("Failed to send op %d: %v", opCode, err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(domain.ComputeLabel(state.Engine.State(), state.HumanID != ""))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if label == state.lastLabel {
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
		return
	}
	state.lastLabel = label
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
