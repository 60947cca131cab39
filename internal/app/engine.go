package app

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

var (
	ErrWrongPhase     = errors.New("operation not allowed in current phase")
	ErrGameOver       = errors.New("game is over")
	ErrNotPlaying     = errors.New("duel not in playing phase")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrResolvingTrick = errors.New("trick is being resolved")
	ErrNotSelector    = errors.New("player is not the trump selector")
	ErrInvalidCall    = errors.New("coin call must be heads or tails")
	ErrUnknownCommand = errors.New("unknown command")

	ErrInvalidZone    = domain.ErrInvalidZone
	ErrInvalidSlot    = domain.ErrSlotOutOfRange
	ErrEmptySlot      = domain.ErrEmptySlot
	ErrMustFollowSuit = domain.ErrMustFollowSuit
)

// CoinFace is a side of the round-one coin.
type CoinFace string

const (
	Heads CoinFace = "heads"
	Tails CoinFace = "tails"
)

// ParseCoinFace accepts "heads" or "tails".
func ParseCoinFace(v string) (CoinFace, error) {
	switch CoinFace(v) {
	case Heads, Tails:
		return CoinFace(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCall, v)
	}
}

// Options configures an Engine.
type Options struct {
	// RNG drives shuffles, the coin and the easy bot. Nil means time-seeded.
	RNG *rand.Rand
	// Scheduler runs the timed steps. Nil means a fresh QueueScheduler.
	Scheduler Scheduler
	Pacing    Pacing
	// Difficulty is the computer level; empty means medium.
	Difficulty bot.Level
	// LogLimit bounds Log(); zero means DefaultLogLimit.
	LogLimit int
}

// Engine owns one duel between the human seat and the computer. It is not
// safe for concurrent use: hosts serialize every call, scheduled steps
// included, on one goroutine.
type Engine struct {
	id     string
	game   *domain.Game
	rng    *rand.Rand
	sched  Scheduler
	pacing Pacing

	difficulty     bot.Level
	nextDifficulty bot.Level
	computer       *bot.Agent

	coinTossed       bool
	computerThinking bool
	resolvingTrick   bool
	epoch            int

	events   []Event
	logbook  []LogEntry
	logLimit int
}

// NewEngine constructs an Engine in setup.
func NewEngine(opts Options) (*Engine, error) {
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewQueueScheduler()
	}
	level := opts.Difficulty
	if level == "" {
		level = bot.LevelMedium
	}
	agent, err := bot.NewAgent(domain.SideComputer, level, rng)
	if err != nil {
		return nil, err
	}
	limit := opts.LogLimit
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	e := &Engine{
		id:             uuid.NewString(),
		game:           domain.NewGame(),
		rng:            rng,
		sched:          sched,
		pacing:         opts.Pacing,
		difficulty:     level,
		nextDifficulty: level,
		computer:       agent,
		logLimit:       limit,
	}
	e.note("Game ready - Click 'Start Game' to begin", ToneInfo)
	return e, nil
}

// GameID identifies the current game; it changes on Restart.
func (e *Engine) GameID() string { return e.id }

// Phase returns the lifecycle phase.
func (e *Engine) Phase() domain.Phase { return e.game.Phase }

// State exposes the authoritative game for read-only use by in-process
// strategies. Callers must not mutate it.
func (e *Engine) State() *domain.Game { return e.game }

// Difficulty returns the active and the pending computer level.
func (e *Engine) Difficulty() (active, next bot.Level) {
	return e.difficulty, e.nextDifficulty
}

// Events drains the events emitted since the previous call.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}

// StartNewRound deals a fresh round. It is allowed from setup and from
// round-end.
func (e *Engine) StartNewRound() error {
	g := e.game
	switch g.Phase {
	case domain.PhaseSetup:
	case domain.PhaseRoundEnd:
		g.RoundNumber++
	case domain.PhaseGameOver:
		return ErrGameOver
	default:
		return fmt.Errorf("%w: start round during %s", ErrWrongPhase, g.Phase)
	}

	if e.nextDifficulty != e.difficulty {
		agent, err := bot.NewAgent(domain.SideComputer, e.nextDifficulty, e.rng)
		if err != nil {
			return err
		}
		e.computer = agent
		e.difficulty = e.nextDifficulty
	}

	g.ResetRound()
	e.computerThinking = false
	e.resolvingTrick = false
	deck := domain.ShuffleDeck(domain.NewDeck(), e.rng)
	g.Player.Cards.Hand, g.Computer.Cards.Hand, g.Pending = domain.DealInitial(deck)

	e.emit(EventRoundStarted, RoundStartedPayload{
		Round:      g.RoundNumber,
		Difficulty: e.difficulty,
		CoinToss:   !e.coinTossed,
	})

	if !e.coinTossed {
		g.Phase = domain.PhaseCoinToss
		return nil
	}
	g.TrumpSelector = g.TrumpSelector.Opponent()
	e.beginTrumpSelection()
	return nil
}

// CallCoinToss settles who names trump in round one.
func (e *Engine) CallCoinToss(call CoinFace) error {
	if e.game.Phase != domain.PhaseCoinToss {
		return fmt.Errorf("%w: coin toss during %s", ErrWrongPhase, e.game.Phase)
	}
	if _, err := ParseCoinFace(string(call)); err != nil {
		return err
	}
	result := Tails
	if e.rng.Float64() < 0.5 {
		result = Heads
	}
	winner := domain.SideComputer
	if call == result {
		winner = domain.SidePlayer
	}
	e.coinTossed = true
	e.game.TrumpSelector = winner
	e.emit(EventCoinTossed, CoinTossedPayload{Call: call, Result: result, Winner: winner})
	e.beginTrumpSelection()
	return nil
}

func (e *Engine) beginTrumpSelection() {
	g := e.game
	g.Phase = domain.PhaseTrumpSelection
	g.CurrentPlayer = g.TrumpSelector
	if g.TrumpSelector == domain.SideComputer {
		e.after(e.pacing.ComputerTrump, func() {
			e.applyTrump(e.computer.ChooseTrump(e.game))
		})
	}
}

// SetTrump names trump for the round when the human is the selector.
func (e *Engine) SetTrump(suit domain.Suit) error {
	g := e.game
	if g.Phase != domain.PhaseTrumpSelection {
		return fmt.Errorf("%w: set trump during %s", ErrWrongPhase, g.Phase)
	}
	if g.TrumpSelector != domain.SidePlayer {
		return ErrNotSelector
	}
	if !suit.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnknownSuit, suit)
	}
	e.applyTrump(suit)
	return nil
}

func (e *Engine) applyTrump(suit domain.Suit) {
	g := e.game
	if g.Phase != domain.PhaseTrumpSelection {
		return
	}
	g.Trump = suit
	g.Phase = domain.PhaseDealingRemaining
	e.emit(EventTrumpSelected, TrumpSelectedPayload{Selector: g.TrumpSelector, Suit: suit})
	e.after(e.pacing.DealRemaining, e.dealRemaining)
}

func (e *Engine) dealRemaining() {
	g := e.game
	if g.Phase != domain.PhaseDealingRemaining {
		log.Panicf("deal remaining during %s", g.Phase)
	}
	domain.DealRemaining(g.Pending, &g.Player.Cards, &g.Computer.Cards)
	g.Pending = nil
	g.Phase = domain.PhasePlaying
	g.CurrentPlayer = g.TrumpSelector
	g.Trick.Reset(g.TrumpSelector)
	e.emit(EventCardsDealt, CardsDealtPayload{FirstPlayer: g.TrumpSelector})
	if g.CurrentPlayer == domain.SideComputer {
		e.RequestComputerMove()
	}
}

// ValidPlays lists the human's legal options, or nil when it is not the
// human's move.
func (e *Engine) ValidPlays() []domain.PlayOption {
	g := e.game
	if g.Phase != domain.PhasePlaying || e.resolvingTrick || g.CurrentPlayer != domain.SidePlayer || g.Trick.IsComplete() {
		return nil
	}
	return domain.ValidPlays(&g.Player.Cards, g.Trick.LeadSuit)
}

// SubmitPlay plays the human's card at zone/index. A rejected play leaves
// the state untouched and emits play_rejected.
func (e *Engine) SubmitPlay(zone domain.Zone, index int) error {
	if err := e.checkHumanTurn(); err != nil {
		e.reject(zone, index, err)
		return err
	}
	play, revealed, err := e.game.ApplyPlay(domain.SidePlayer, zone, index)
	if err != nil {
		e.reject(zone, index, err)
		return err
	}
	e.afterPlay(play, revealed)
	return nil
}

func (e *Engine) checkHumanTurn() error {
	g := e.game
	switch {
	case e.resolvingTrick:
		return ErrResolvingTrick
	case g.Phase != domain.PhasePlaying:
		return fmt.Errorf("%w: %s", ErrNotPlaying, g.Phase)
	case g.CurrentPlayer != domain.SidePlayer || g.Trick.IsComplete():
		return ErrNotYourTurn
	}
	return nil
}

func (e *Engine) reject(zone domain.Zone, index int, err error) {
	e.emit(EventPlayRejected, PlayRejectedPayload{Zone: zone, Index: index, Reason: rejectionReason(err)})
}

func (e *Engine) afterPlay(play domain.Play, revealed domain.Card) {
	g := e.game
	payload := CardPlayedPayload{
		Side:     play.Side,
		Card:     play.Card,
		Zone:     play.Zone,
		Index:    play.Index,
		Revealed: revealed,
	}
	if g.Trick.IsComplete() {
		e.emit(EventCardPlayed, payload)
		e.resolvingTrick = true
		e.after(e.pacing.TrickResolve, e.resolveTrick)
		return
	}
	payload.NextTurn = g.CurrentPlayer
	e.emit(EventCardPlayed, payload)
	if g.CurrentPlayer == domain.SideComputer {
		e.RequestComputerMove()
	}
}

// RequestComputerMove schedules the computer's play. It reports false and
// does nothing while a move is already pending, during trick resolution,
// out of turn or outside playing.
func (e *Engine) RequestComputerMove() bool {
	if !e.computerMayPlay() || e.computerThinking {
		return false
	}
	e.computerThinking = true
	e.after(e.pacing.ComputerMove, e.computerMove)
	return true
}

func (e *Engine) computerMayPlay() bool {
	g := e.game
	return !e.resolvingTrick &&
		g.Phase == domain.PhasePlaying &&
		g.CurrentPlayer == domain.SideComputer &&
		!g.Trick.IsComplete()
}

func (e *Engine) computerMove() {
	e.computerThinking = false
	if !e.computerMayPlay() {
		return
	}
	choice, ok := e.computer.Play(e.game)
	if !ok {
		return
	}
	play, revealed, err := e.game.ApplyPlay(domain.SideComputer, choice.Zone, choice.Index)
	if err != nil {
		log.Panicf("computer chose an illegal play %+v: %v", choice, err)
	}
	e.afterPlay(play, revealed)
}

func (e *Engine) resolveTrick() {
	g := e.game
	win, trick := g.ResolveTrick()
	e.resolvingTrick = false
	e.emit(EventTrickResolved, TrickResolvedPayload{
		TrickNumber: g.TrickCount,
		Winner:      win.Side,
		WinningCard: win.Card,
		Plays:       trick.Plays,
	})
	e.after(e.pacing.AfterTrick, e.afterTrick)
}

func (e *Engine) afterTrick() {
	g := e.game
	if g.Phase != domain.PhasePlaying {
		return
	}
	if g.RoundComplete() {
		e.endRound()
		return
	}
	if g.CurrentPlayer == domain.SideComputer {
		e.RequestComputerMove()
	}
}

func (e *Engine) endRound() {
	g := e.game
	res := g.ScoreRound()
	e.emit(EventRoundEnded, RoundEndedPayload{RoundResult: res})
	if winner, over := g.CheckGameEnd(); over {
		e.emit(EventGameOver, GameOverPayload{
			Winner:        winner,
			PlayerScore:   g.Player.Score,
			ComputerScore: g.Computer.Score,
		})
		return
	}
	g.Phase = domain.PhaseRoundEnd
}

// SetDifficulty changes the computer level from the next round on.
func (e *Engine) SetDifficulty(level bot.Level) error {
	parsed, err := bot.ParseLevel(string(level))
	if err != nil {
		return err
	}
	e.nextDifficulty = parsed
	e.emit(EventDifficultyChanged, DifficultyChangedPayload{Level: parsed, Active: e.difficulty})
	return nil
}

// Restart abandons the current game. Queued steps become no-ops; the
// difficulty setting survives.
func (e *Engine) Restart() {
	e.epoch++
	e.id = uuid.NewString()
	e.game = domain.NewGame()
	e.coinTossed = false
	e.computerThinking = false
	e.resolvingTrick = false
	e.emit(EventGameRestarted, GameRestartedPayload{GameID: e.id})
}

// after schedules step, dropping it if the game restarts first.
func (e *Engine) after(delay time.Duration, step func()) {
	epoch := e.epoch
	e.sched.Schedule(delay, func() {
		if e.epoch != epoch {
			return
		}
		step()
	})
}

func (e *Engine) emit(kind EventKind, payload any) {
	ev := Event{Kind: kind, Payload: payload}
	e.events = append(e.events, ev)
	if msg, tone := describe(ev); msg != "" {
		e.note(msg, tone)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMustFollowSuit):
		return "Invalid play! You must follow suit if possible."
	case errors.Is(err, ErrResolvingTrick):
		return "Please wait, the trick is being resolved."
	case errors.Is(err, ErrNotYourTurn):
		return "It is not your turn."
	default:
		return err.Error()
	}
}
