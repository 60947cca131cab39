// Package sim plays computer-versus-computer duels through the engine's
// public operations and tallies the results.
package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"trumpduel/internal/app"
	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

var ErrStalled = errors.New("simulation stalled")

// Config controls a simulation run.
type Config struct {
	Games    int
	Seed     int64
	Player   bot.Level
	Computer bot.Level
	// MaxRounds caps a single game; zero means 100.
	MaxRounds int
}

// Result aggregates a run.
type Result struct {
	Config         Config
	Games          int
	PlayerWins     int
	ComputerWins   int
	Unfinished     int
	Rounds         int
	PlayerTricks   int
	ComputerTricks int
	// DecisiveRounds counts rounds in which either side scored.
	DecisiveRounds int
}

// AvgRounds is the mean number of rounds per game.
func (r Result) AvgRounds() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Rounds) / float64(r.Games)
}

// AvgPlayerTricks is the player seat's mean tricks per round.
func (r Result) AvgPlayerTricks() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.PlayerTricks) / float64(r.Rounds)
}

// PlayerWinRate is the share of finished games the player seat won.
func (r Result) PlayerWinRate() float64 {
	finished := r.PlayerWins + r.ComputerWins
	if finished == 0 {
		return 0
	}
	return float64(r.PlayerWins) / float64(finished)
}

// Run plays cfg.Games duels. Every game reuses one seeded source so a run
// is reproducible.
func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		return Result{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = 100
	}
	for _, l := range []bot.Level{cfg.Player, cfg.Computer} {
		if _, err := bot.ParseLevel(string(l)); err != nil {
			return Result{}, err
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	res := Result{Config: cfg}
	for i := 0; i < cfg.Games; i++ {
		if err := playGame(cfg, rng, &res); err != nil {
			return res, fmt.Errorf("game %d: %w", i+1, err)
		}
		res.Games++
	}
	return res, nil
}

func playGame(cfg Config, rng *rand.Rand, res *Result) error {
	q := app.NewQueueScheduler()
	e, err := app.NewEngine(app.Options{RNG: rng, Scheduler: q, Difficulty: cfg.Computer})
	if err != nil {
		return err
	}
	seat, err := bot.NewAgent(domain.SidePlayer, cfg.Player, rng)
	if err != nil {
		return err
	}

	for round := 0; round < cfg.MaxRounds; round++ {
		if err := e.StartNewRound(); err != nil {
			return err
		}
		if e.Phase() == domain.PhaseCoinToss {
			call := app.Heads
			if rng.Intn(2) == 1 {
				call = app.Tails
			}
			if err := e.CallCoinToss(call); err != nil {
				return err
			}
		}
		if e.Phase() == domain.PhaseTrumpSelection && e.State().TrumpSelector == domain.SidePlayer {
			if err := e.SetTrump(seat.ChooseTrump(e.State())); err != nil {
				return err
			}
		}
		q.Drain()

		for e.Phase() == domain.PhasePlaying {
			choice, ok := seat.Play(e.State())
			if !ok {
				return fmt.Errorf("%w: player has no play in trick %d", ErrStalled, e.State().TrickCount+1)
			}
			if err := e.SubmitPlay(choice.Zone, choice.Index); err != nil {
				return err
			}
			q.Drain()
		}
		tally(e.Events(), res)

		switch e.Phase() {
		case domain.PhaseGameOver:
			if e.State().Winner == domain.SidePlayer {
				res.PlayerWins++
			} else {
				res.ComputerWins++
			}
			return nil
		case domain.PhaseRoundEnd:
		default:
			return fmt.Errorf("%w: round ended in %s", ErrStalled, e.Phase())
		}
	}
	res.Unfinished++
	return nil
}

func tally(events []app.Event, res *Result) {
	for _, ev := range events {
		p, ok := ev.Payload.(app.RoundEndedPayload)
		if !ok {
			continue
		}
		res.Rounds++
		res.PlayerTricks += p.PlayerTricks
		res.ComputerTricks += p.ComputerTricks
		if p.PlayerRoundScore > 0 || p.ComputerRoundScore > 0 {
			res.DecisiveRounds++
		}
	}
}
