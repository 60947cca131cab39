package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// PacingConfig holds the delays of the timed game steps in milliseconds.
type PacingConfig struct {
	ComputerMoveMs  int `json:"computer_move_ms"`
	TrickResolveMs  int `json:"trick_resolve_ms"`
	AfterTrickMs    int `json:"after_trick_ms"`
	ComputerTrumpMs int `json:"computer_trump_ms"`
	DealRemainingMs int `json:"deal_remaining_ms"`
}

// DefaultPacing is the table rhythm players expect.
func DefaultPacing() PacingConfig {
	return PacingConfig{
		ComputerMoveMs:  1000,
		TrickResolveMs:  1500,
		AfterTrickMs:    1000,
		ComputerTrumpMs: 1500,
		DealRemainingMs: 2000,
	}
}

type GameConfig struct {
	DefaultDifficulty string       `json:"default_difficulty"`
	Pacing            PacingConfig `json:"pacing"`
	LogLimit          int          `json:"log_limit"`
	ListenAddr        string       `json:"listen_addr"`
	LogLevel          string       `json:"log_level"`
	// TickRate is the Nakama match loop frequency.
	TickRate     int    `json:"tick_rate"`
	ProfilesPath string `json:"profiles_path"`
}

// Default returns the configuration used when no file is present.
func Default() GameConfig {
	return GameConfig{
		DefaultDifficulty: "medium",
		Pacing:            DefaultPacing(),
		LogLimit:          50,
		ListenAddr:        ":8080",
		LogLevel:          "info",
		TickRate:          10,
	}
}

// Parse decodes a JSON config over the defaults.
func Parse(data []byte) (GameConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.TickRate <= 0 {
		return GameConfig{}, fmt.Errorf("invalid tick rate %d", c.TickRate)
	}
	if c.LogLimit <= 0 {
		c.LogLimit = 50
	}
	return c, nil
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}
		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults when
// nothing was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

// Environment keys. The lowercase forms are the ones Nakama passes through
// runtime.RUNTIME_CTX_ENV.
const (
	EnvDefaultDifficulty = "TRUMPDUEL_DEFAULT_DIFFICULTY"
	EnvFastPacing        = "TRUMPDUEL_FAST_PACING"
	EnvListenAddr        = "TRUMPDUEL_LISTEN_ADDR"
	EnvLogLevel          = "TRUMPDUEL_LOG_LEVEL"
)

// ApplyEnv overrides c from lookup, which is usually os.LookupEnv or a map
// from the Nakama runtime context. Both the upper- and lowercase key forms
// are honoured.
func ApplyEnv(c GameConfig, lookup func(string) (string, bool)) GameConfig {
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		if v, ok := lookup(strings.ToLower(key)); ok && v != "" {
			return v, true
		}
		return "", false
	}
	if v, ok := get(EnvDefaultDifficulty); ok {
		c.DefaultDifficulty = strings.ToLower(v)
	}
	if v, ok := get(EnvFastPacing); ok {
		if fast, err := strconv.ParseBool(v); err == nil && fast {
			c.Pacing = PacingConfig{}
		}
	}
	if v, ok := get(EnvListenAddr); ok {
		c.ListenAddr = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(v)
	}
	return c
}

// MapLookup adapts an env map to ApplyEnv.
func MapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// LoadDotEnv loads the given .env files, skipping ones that do not exist.
// Variables already set in the process win.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}
