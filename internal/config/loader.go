package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves one YAML document.
// Search order: customPath -> ~/.rpg/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// The second result is false when even the embedded document failed to parse.
func load[T any](customPath, name string, embedded []byte) (T, bool, error) {
	var cfg T
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, false, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, false, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, true, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var user T
			if err := yaml.Unmarshal(data, &user); err == nil {
				return user, true, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var local T
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, true, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		var zero T
		return zero, false, nil
	}
	return cfg, true, nil
}

// LoadTuning loads the simulation tuning.
// Search order: customPath -> ~/.rpg/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (TuningConfig, error) {
	cfg, ok, err := load[TuningConfig](customPath, "tuning", defaultTuningYAML)
	if err != nil {
		return DefaultTuningConfig(), err
	}
	if !ok {
		return DefaultTuningConfig(), nil // Fallback to hardcoded if embed fails
	}
	preset, valid := ParseDifficultyPreset(string(cfg.Difficulty.Preset))
	if !valid {
		return cfg, fmt.Errorf("invalid difficulty preset %q (use: easy, normal, hard)", cfg.Difficulty.Preset)
	}
	cfg.Difficulty.Preset = preset
	return cfg, nil
}

// LoadContent loads and validates the content tables.
// Search order: customPath -> ~/.rpg/configs/content.yaml -> ./configs/content.yaml -> embedded default
func LoadContent(customPath string) (*Content, error) {
	c, ok, err := load[Content](customPath, "content", defaultContentYAML)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("embedded content is corrupt")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

// MustDefaultContent returns the embedded content tables, panicking if they
// do not parse. Intended for tests and tools.
func MustDefaultContent() *Content {
	var c Content
	if err := yaml.Unmarshal(defaultContentYAML, &c); err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return &c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rpg", "configs", filename)
}

// ApplyPreset modifies the tuning based on a difficulty preset.
func ApplyPreset(cfg *TuningConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Player.Potions = 5
		cfg.Player.MaxPotions = 5
		cfg.Spawn.Chance = 0.4
	case DifficultyHard:
		cfg.Player.Potions = 1
		cfg.Loot.PotionDropChance = 0.02
		cfg.Spawn.Chance = 0.8
	}
}
