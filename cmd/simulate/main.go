package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"trumpduel/internal/bot"
	"trumpduel/internal/sim"
)

func main() {
	games := flag.Int("games", 200, "games per pairing")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	player := flag.String("player", "", "player seat level (default: every level)")
	computer := flag.String("computer", "", "computer seat level (default: every level)")
	flag.Parse()

	players, err := levels(*player)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	computers, err := levels(*computer)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	pterm.DefaultSection.Printfln("Trump Duel simulation, %d games per pairing, seed %d", *games, *seed)
	data := pterm.TableData{{"Player", "Computer", "Player wins", "Computer wins", "Unfinished", "Win rate", "Avg rounds", "Player tricks/round", "Decisive rounds"}}
	for _, p := range players {
		for _, c := range computers {
			res, err := sim.Run(sim.Config{Games: *games, Seed: *seed, Player: p, Computer: c})
			if err != nil {
				pterm.Error.Printfln("%s vs %s: %v", p, c, err)
				os.Exit(1)
			}
			data = append(data, []string{
				bot.ProfileFor(p).DisplayName,
				bot.ProfileFor(c).DisplayName,
				fmt.Sprint(res.PlayerWins),
				fmt.Sprint(res.ComputerWins),
				fmt.Sprint(res.Unfinished),
				fmt.Sprintf("%.1f%%", 100*res.PlayerWinRate()),
				fmt.Sprintf("%.2f", res.AvgRounds()),
				fmt.Sprintf("%.2f", res.AvgPlayerTricks()),
				fmt.Sprintf("%d/%d", res.DecisiveRounds, res.Rounds),
			})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func levels(v string) ([]bot.Level, error) {
	if v == "" {
		return bot.Levels, nil
	}
	l, err := bot.ParseLevel(v)
	if err != nil {
		return nil, err
	}
	return []bot.Level{l}, nil
}
