package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Profile is the presentation of a difficulty tier.
type Profile struct {
	Level       Level  `json:"level"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

var defaultProfiles = map[Level]Profile{
	LevelEasy: {
		Level:       LevelEasy,
		DisplayName: "Easy",
		Description: "Relaxed AI that makes random choices. Great for learning!",
	},
	LevelMedium: {
		Level:       LevelMedium,
		DisplayName: "Medium",
		Description: "Balanced AI that analyzes visible cards.",
	},
	LevelHard: {
		Level:       LevelHard,
		DisplayName: "Hard",
		Description: "Expert AI that tracks all played cards and plays optimally!",
	},
}

var (
	profiles = defaultProfiles
	loadOnce sync.Once
	loadErr  error
)

// LoadProfiles overrides the built-in profiles from a JSON array file.
// Unknown levels are rejected; levels missing from the file keep their
// defaults.
func LoadProfiles(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot profiles: %w", err)
			return
		}
		loaded, err := parseProfiles(data)
		if err != nil {
			loadErr = err
			return
		}
		profiles = loaded
	})
	return loadErr
}

func parseProfiles(data []byte) (map[Level]Profile, error) {
	var list []Profile
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot profiles: %w", err)
	}
	out := make(map[Level]Profile, len(defaultProfiles))
	for l, p := range defaultProfiles {
		out[l] = p
	}
	for _, p := range list {
		level, err := ParseLevel(string(p.Level))
		if err != nil {
			return nil, fmt.Errorf("bot profile: %w", err)
		}
		p.Level = level
		out[level] = p
	}
	return out, nil
}

// ProfileFor returns the profile of level, falling back to a bare profile
// for unknown levels.
func ProfileFor(level Level) Profile {
	if p, ok := profiles[level]; ok {
		return p
	}
	return Profile{Level: level, DisplayName: string(level)}
}

// Profiles returns all profiles in increasing strength.
func Profiles() []Profile {
	out := make([]Profile, 0, len(Levels))
	for _, l := range Levels {
		out = append(out, ProfileFor(l))
	}
	return out
}
