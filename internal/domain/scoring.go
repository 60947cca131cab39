package domain

const (
	// TricksPerRound is the number of tricks in a round: 15 cards per side.
	TricksPerRound = 15
	// SelectorTarget is the trick target of the side that named trump.
	SelectorTarget = 8
	// DefenderTarget is the trick target of the other side.
	DefenderTarget = 7
	// WinningScore ends the game as soon as a side reaches it.
	WinningScore = 1
)

// Target returns side's trick target for a round where selector named trump.
func Target(side, selector Side) int {
	if side == selector {
		return SelectorTarget
	}
	return DefenderTarget
}

// RoundScore is the number of tricks taken beyond target, never negative.
func RoundScore(tricks, target int) int {
	if tricks <= target {
		return 0
	}
	return tricks - target
}

// RoundResult summarizes a scored round.
type RoundResult struct {
	Round              int `json:"round"`
	PlayerTricks       int `json:"player_tricks"`
	ComputerTricks     int `json:"computer_tricks"`
	PlayerRoundScore   int `json:"player_round_score"`
	ComputerRoundScore int `json:"computer_round_score"`
	PlayerTotal        int `json:"player_total"`
	ComputerTotal      int `json:"computer_total"`
}

// ScoreRound adds this round's points to the cumulative scores.
func (g *Game) ScoreRound() RoundResult {
	p := RoundScore(g.Player.TricksWon, Target(SidePlayer, g.TrumpSelector))
	c := RoundScore(g.Computer.TricksWon, Target(SideComputer, g.TrumpSelector))
	g.Player.Score += p
	g.Computer.Score += c
	return RoundResult{
		Round:              g.RoundNumber,
		PlayerTricks:       g.Player.TricksWon,
		ComputerTricks:     g.Computer.TricksWon,
		PlayerRoundScore:   p,
		ComputerRoundScore: c,
		PlayerTotal:        g.Player.Score,
		ComputerTotal:      g.Computer.Score,
	}
}

// CheckGameEnd marks the game over once a side reaches WinningScore. The
// player is checked first.
func (g *Game) CheckGameEnd() (Side, bool) {
	switch {
	case g.Player.Score >= WinningScore:
		g.Winner = SidePlayer
	case g.Computer.Score >= WinningScore:
		g.Winner = SideComputer
	default:
		return NoSide, false
	}
	g.GameOver = true
	g.Phase = PhaseGameOver
	return g.Winner, true
}
