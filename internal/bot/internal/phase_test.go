package internal

import (
	"testing"

	"trumpduel/internal/domain"
)

func TestDetectSchedule(t *testing.T) {
	game := domain.NewGame()
	game.TrumpSelector = domain.SideComputer
	game.Computer.TricksWon = 3
	game.TrickCount = 5

	got := DetectSchedule(game, domain.SideComputer)
	if got.Needed != 5 || got.Remaining != 10 {
		t.Fatalf("computer schedule = %+v, want needed 5 remaining 10", got)
	}
	got = DetectSchedule(game, domain.SidePlayer)
	if got.Needed != 7 || got.Remaining != 10 {
		t.Fatalf("player schedule = %+v, want needed 7 remaining 10", got)
	}
}

func TestSchedulePredicates(t *testing.T) {
	tests := []struct {
		name                              string
		s                                 Schedule
		needs, behind, pressed, desperate bool
	}{
		{name: "fresh selector", s: Schedule{Needed: 8, Remaining: 15}, needs: true, behind: true, pressed: true},
		{name: "on pace", s: Schedule{Needed: 4, Remaining: 10}, needs: true},
		{name: "exactly half", s: Schedule{Needed: 5, Remaining: 10}, needs: true, pressed: true},
		{name: "desperate", s: Schedule{Needed: 4, Remaining: 5}, needs: true, behind: true, pressed: true, desperate: true},
		{name: "target reached", s: Schedule{Needed: 0, Remaining: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.NeedsTricks(); got != tt.needs {
				t.Fatalf("NeedsTricks = %v, want %v", got, tt.needs)
			}
			if got := tt.s.Behind(); got != tt.behind {
				t.Fatalf("Behind = %v, want %v", got, tt.behind)
			}
			if got := tt.s.Pressed(); got != tt.pressed {
				t.Fatalf("Pressed = %v, want %v", got, tt.pressed)
			}
			if got := tt.s.Desperate(); got != tt.desperate {
				t.Fatalf("Desperate = %v, want %v", got, tt.desperate)
			}
		})
	}
}
