package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSmash loads Smash configuration.
// Search order: customPath -> ~/.arcade/configs/smash.yaml -> ./configs/smash.yaml -> embedded default
//
// Files are decoded on top of the built-in defaults, so a file only needs the keys it changes.
// The result is not validated; call Validate before using it.
func LoadSmash(customPath string) (SmashConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readSmashFile(customPath)
		if err != nil {
			return DefaultSmashConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("smash.yaml"); userCfgPath != "" {
		if cfg, err := readSmashFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readSmashFile(filepath.Join("configs", "smash.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseSmash(defaultSmashYAML)
	if err != nil {
		return DefaultSmashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSmash decodes YAML on top of the built-in defaults.
func ParseSmash(data []byte) (SmashConfig, error) {
	cfg := DefaultSmashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSmashConfig(), err
	}
	return cfg, nil
}

// MarshalSmash encodes a configuration as YAML.
func MarshalSmash(cfg SmashConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func readSmashFile(path string) (SmashConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSmashConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseSmash(data)
	if err != nil {
		return DefaultSmashConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySmashPreset modifies the config based on a difficulty preset.
// Easy widens the armed window and slows the walk; hard does the opposite.
func ApplySmashPreset(cfg *SmashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hold.MaxCharge = 8.0
		cfg.Actor.WalkSpeed = 1.5
	case DifficultyHard:
		cfg.Hold.MaxCharge = 5.0
		cfg.Actor.WalkSpeed = 3.0
	}
}
