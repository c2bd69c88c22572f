// Package config provides YAML-based application configuration loading
// for huematch. It covers tunables fixed at startup (feedback delay, tick
// rate, analysis curve, first-run setting defaults); runtime-mutable user
// settings live in internal/settings.
package config

// Config is the top-level application configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GameConfig defines round pacing parameters. The countdown itself is not
// configurable; it always runs at one tick per second.
type GameConfig struct {
	// PostRoundDelayMS is how long the similarity result stays on screen
	// before the next round starts.
	PostRoundDelayMS int `yaml:"post_round_delay_ms"`
}

// AnalysisConfig selects the post-game accuracy scoring curve.
type AnalysisConfig struct {
	// Curve is "linear" or "power".
	Curve string `yaml:"curve"`
}

// DefaultsConfig seeds user settings on first run (before any value has
// been persisted). Validation bounds are the same as at runtime.
type DefaultsConfig struct {
	ScoreThreshold float64 `yaml:"score_threshold"`
	TimerDuration  int     `yaml:"timer_duration"`
	BlindMode      bool    `yaml:"blind_mode"`
	StrictMode     bool    `yaml:"strict_mode"`
}
