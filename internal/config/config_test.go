package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte(`{"default_difficulty":"hard","pacing":{"computer_move_ms":10}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.DefaultDifficulty != "hard" {
		t.Fatalf("difficulty = %q, want hard", c.DefaultDifficulty)
	}
	if c.Pacing.ComputerMoveMs != 10 {
		t.Fatalf("computer move = %d, want 10", c.Pacing.ComputerMoveMs)
	}
	if c.TickRate != 10 || c.LogLimit != 50 || c.ListenAddr != ":8080" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: `{"tick_rate":`},
		{name: "zero tick rate", data: `{"tick_rate":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TRUMPDUEL_DEFAULT_DIFFICULTY": "EASY",
		"trumpduel_fast_pacing":        "true",
		"TRUMPDUEL_LISTEN_ADDR":        "",
	}
	c := ApplyEnv(Default(), MapLookup(env))
	if c.DefaultDifficulty != "easy" {
		t.Fatalf("difficulty = %q, want easy", c.DefaultDifficulty)
	}
	if c.Pacing != (PacingConfig{}) {
		t.Fatalf("fast pacing not applied: %+v", c.Pacing)
	}
	if c.ListenAddr != ":8080" {
		t.Fatalf("empty override replaced listen addr: %q", c.ListenAddr)
	}
}

func TestLoadGameConfig(t *testing.T) {
	if err := LoadGameConfig(filepath.Join("..", "..", "data", "game_config.json")); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := GetGameConfig()
	if got.Pacing != DefaultPacing() {
		t.Fatalf("pacing = %+v, want %+v", got.Pacing, DefaultPacing())
	}
	if got.ProfilesPath == "" {
		t.Fatalf("profiles path missing")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TRUMPDUEL_TEST_ONLY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("TRUMPDUEL_TEST_ONLY") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("TRUMPDUEL_TEST_ONLY"); got != "from-file" {
		t.Fatalf("env = %q, want from-file", got)
	}
}
