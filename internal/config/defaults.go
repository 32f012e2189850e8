package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultConfig returns the built-in configuration, mirroring the embedded
// YAML. Used as the last-resort fallback if the embedded file cannot be
// parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  80,
			Height: 24,
		},
		Ball: BallConfig{
			Radius: 0.02,
		},
		Paddle: PaddleConfig{
			Length: 0.4,
			Step:   0.1,
		},
		Game: GameConfig{
			SpeedIncreaseInterval: 500,
			SpeedMultiplier:       1.1,
			WinScore:              11,
			SubSteps:              10,
			MaxBallSpeed:          0.08,
		},
		AI: AIConfig{
			Difficulty: "medium",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for the
// `pong config` command to write out as a starting point.
func DefaultYAML() []byte {
	return defaultPongYAML
}
