package config

import (
	_ "embed"
)

//go:embed defaults/huematch.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Game: GameConfig{
			PostRoundDelayMS: 1500,
		},
		Analysis: AnalysisConfig{
			Curve: "linear",
		},
		Defaults: DefaultsConfig{
			ScoreThreshold: 90,
			TimerDuration:  30,
			BlindMode:      false,
			StrictMode:     true,
		},
	}
}
