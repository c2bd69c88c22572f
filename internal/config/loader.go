package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.huematch/config.yaml -> ./configs/huematch.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Every file is unmarshaled over the hardcoded defaults, so a partial
	// YAML only overrides the fields it mentions. Zero values for omitted
	// fields would otherwise flip strict_mode off and the timer infinite.

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := Default()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/huematch.yaml"); err == nil {
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".huematch", filename)
}

// sanitize fills zero or nonsensical values with hardcoded defaults so a
// partial YAML file stays usable.
func sanitize(cfg Config) Config {
	def := Default()

	if cfg.Game.PostRoundDelayMS <= 0 {
		cfg.Game.PostRoundDelayMS = def.Game.PostRoundDelayMS
	}
	if cfg.Analysis.Curve != "linear" && cfg.Analysis.Curve != "power" {
		cfg.Analysis.Curve = def.Analysis.Curve
	}
	if cfg.Defaults.ScoreThreshold < 50 || cfg.Defaults.ScoreThreshold > 99.9 {
		cfg.Defaults.ScoreThreshold = def.Defaults.ScoreThreshold
	}
	if cfg.Defaults.TimerDuration < 0 {
		cfg.Defaults.TimerDuration = def.Defaults.TimerDuration
	}

	return cfg
}

// PostRoundDelay returns the feedback delay as a duration.
func (c Config) PostRoundDelay() time.Duration {
	return time.Duration(c.Game.PostRoundDelayMS) * time.Millisecond
}
