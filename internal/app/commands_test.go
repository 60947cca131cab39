package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trumpduel/internal/bot"
	"trumpduel/internal/domain"
)

func TestExecuteDispatch(t *testing.T) {
	e, q := newTestEngine(t, 5, bot.LevelEasy)

	require.NoError(t, e.Execute(Command{Kind: CommandStartRound}))
	assert.ErrorIs(t, e.Execute(Command{Kind: CommandCoinCall, Call: "sideways"}), ErrInvalidCall)
	require.NoError(t, e.Execute(Command{Kind: CommandCoinCall, Call: "heads"}))
	if e.State().TrumpSelector == domain.SidePlayer {
		assert.ErrorIs(t, e.Execute(Command{Kind: CommandSetTrump, Suit: "stars"}), domain.ErrUnknownSuit)
		require.NoError(t, e.Execute(Command{Kind: CommandSetTrump, Suit: "♦"}))
		assert.Equal(t, domain.Diamonds, e.State().Trump)
	}
	q.Drain()
	require.Equal(t, domain.PhasePlaying, e.Phase())

	valid := e.ValidPlays()
	require.NotEmpty(t, valid)
	require.NoError(t, e.Execute(Command{Kind: CommandPlayCard, Zone: string(valid[0].Zone), Index: valid[0].Index}))
	require.NoError(t, e.Execute(Command{Kind: CommandRequestComputerMove}))
	require.NoError(t, e.Execute(Command{Kind: CommandSetDifficulty, Level: "hard"}))
	_, next := e.Difficulty()
	assert.Equal(t, bot.LevelHard, next)

	require.NoError(t, e.Execute(Command{Kind: CommandRestart}))
	assert.Equal(t, domain.PhaseSetup, e.Phase())
	assert.ErrorIs(t, e.Execute(Command{Kind: "shuffle"}), ErrUnknownCommand)
}

func TestCommandWireForm(t *testing.T) {
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(`{"type":"play_card","zone":"faceUp","index":2}`), &cmd))
	assert.Equal(t, Command{Kind: CommandPlayCard, Zone: "faceUp", Index: 2}, cmd)

	out, err := json.Marshal(Command{Kind: CommandPlayCard, Zone: "hand", Index: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"play_card","zone":"hand","index":0}`, string(out))
}

func TestExecutePlayCardParsesZone(t *testing.T) {
	e, _ := newTestEngine(t, 3, bot.LevelEasy)
	seatPlaying(t, e, domain.SidePlayer, []string{"10_clubs"}, []string{"K_clubs"})
	e.game.Player.Cards.FaceDown[0] = card(t, "A_spades")

	for _, zone := range []string{"faceDown", "discard", ""} {
		err := e.Execute(Command{Kind: CommandPlayCard, Zone: zone, Index: 0})
		assert.ErrorIs(t, err, ErrInvalidZone, "zone %q", zone)
	}
	assert.Empty(t, e.Events())
	assert.Equal(t, card(t, "A_spades"), e.game.Player.Cards.FaceDown[0])

	require.NoError(t, e.Execute(Command{Kind: CommandPlayCard, Zone: "hand", Index: 0}))
	assert.True(t, e.game.Player.Cards.Hand[0].IsZero())
}
