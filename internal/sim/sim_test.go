package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

func TestRunIsDeterministic(t *testing.T) {
	cfg := Config{Games: 5, Seed: 42, Player: bot.LevelMedium, Computer: bot.LevelHard}
	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunTallies(t *testing.T) {
	for _, player := range bot.Levels {
		for _, computer := range bot.Levels {
			t.Run(string(player)+"_vs_"+string(computer), func(t *testing.T) {
				res, err := Run(Config{Games: 4, Seed: 7, Player: player, Computer: computer})
				require.NoError(t, err)
				assert.Equal(t, 4, res.Games)
				assert.Equal(t, res.Games, res.PlayerWins+res.ComputerWins+res.Unfinished)
				assert.Equal(t, res.Rounds*domain.TricksPerRound, res.PlayerTricks+res.ComputerTricks)
				assert.GreaterOrEqual(t, res.Rounds, res.Games-res.Unfinished)
				assert.LessOrEqual(t, res.DecisiveRounds, res.Rounds)
			})
		}
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(Config{Games: 0, Player: bot.LevelEasy, Computer: bot.LevelEasy})
	assert.Error(t, err)
	_, err = Run(Config{Games: 1, Player: "grandmaster", Computer: bot.LevelEasy})
	assert.Error(t, err)
}

func TestResultRates(t *testing.T) {
	r := Result{Games: 4, PlayerWins: 1, ComputerWins: 3, Rounds: 10, PlayerTricks: 75}
	assert.InDelta(t, 2.5, r.AvgRounds(), 1e-9)
	assert.InDelta(t, 7.5, r.AvgPlayerTricks(), 1e-9)
	assert.InDelta(t, 0.25, r.PlayerWinRate(), 1e-9)
	assert.Zero(t, Result{}.AvgRounds())
	assert.Zero(t, Result{}.PlayerWinRate())
}
