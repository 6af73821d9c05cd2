package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSwarm loads the game configuration.
// Search order: customPath -> ~/.swarm/configs/swarm.yaml -> ./configs/swarm.yaml -> embedded default.
// Files are applied on top of the defaults, so a partial file only overrides what it names.
func LoadSwarm(customPath string) (SwarmConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to hardcoded values.
func embeddedDefault() SwarmConfig {
	var cfg SwarmConfig
	if err := yaml.Unmarshal(defaultSwarmYAML, &cfg); err != nil {
		return DefaultSwarmConfig()
	}
	return cfg
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("swarm.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", "swarm.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swarm", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the loaded values untouched.
func ApplyPreset(cfg *SwarmConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 3
		cfg.Enemies.SpeedScale = 0.8
		cfg.Combat.ContactInvulnerabilityTicks = 30
	case DifficultyNormal:
		cfg.Enemies.Count = 5
		cfg.Enemies.SpeedScale = 1
		cfg.Combat.ContactInvulnerabilityTicks = 0
	case DifficultyHard:
		cfg.Enemies.Count = 8
		cfg.Enemies.SpeedScale = 1.25
		cfg.Combat.ContactInvulnerabilityTicks = 0
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg SwarmConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
