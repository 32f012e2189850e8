// Package config provides YAML-based configuration loading and validation
// for the pong simulation and its terminal frontend.
package config

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/sim"
)

// Config contains all tunable settings. Values the simulation consumes are
// converted through Params; the window block is only a fallback when the
// terminal size cannot be detected.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Game   GameConfig   `yaml:"game"`
	AI     AIConfig     `yaml:"ai"`
}

// WindowConfig defines the fallback terminal dimensions.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines ball geometry in arena units.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Length float64 `yaml:"length"` // vertical extent in arena units
	Step   float64 `yaml:"step"`   // travel per key press
}

// GameConfig defines match rules and ball physics tuning.
type GameConfig struct {
	SpeedIncreaseInterval int     `yaml:"speed_increase_interval"`
	SpeedMultiplier       float64 `yaml:"speed_multiplier"`
	WinScore              int     `yaml:"win_score"`
	SubSteps              int     `yaml:"sub_steps"`
	// MaxBallSpeed caps post-bounce speed. Keep it at or below
	// sub_steps * 0.01 (the paddle collision band) or a fast ball can
	// tunnel through a paddle within a single sub-step.
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
}

// AIConfig defines the CPU opponent defaults.
type AIConfig struct {
	Difficulty string `yaml:"difficulty"` // easy, medium, hard
}

// Normalize replaces degenerate values with safe defaults, logging each
// substitution. Configuration problems are never fatal.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Ball.Radius <= 0 {
		log.Warn("config: non-positive ball radius, using default", "got", c.Ball.Radius, "using", def.Ball.Radius)
		c.Ball.Radius = def.Ball.Radius
	}
	if c.Paddle.Length <= 0 {
		log.Warn("config: non-positive paddle length, using default", "got", c.Paddle.Length, "using", def.Paddle.Length)
		c.Paddle.Length = def.Paddle.Length
	}
	if c.Paddle.Step <= 0 {
		log.Warn("config: non-positive paddle step, using default", "got", c.Paddle.Step, "using", def.Paddle.Step)
		c.Paddle.Step = def.Paddle.Step
	}
	if c.Game.SpeedIncreaseInterval <= 0 {
		log.Warn("config: non-positive speed increase interval, using default", "got", c.Game.SpeedIncreaseInterval, "using", def.Game.SpeedIncreaseInterval)
		c.Game.SpeedIncreaseInterval = def.Game.SpeedIncreaseInterval
	}
	if c.Game.SpeedMultiplier <= 0 {
		log.Warn("config: non-positive speed multiplier, using default", "got", c.Game.SpeedMultiplier, "using", def.Game.SpeedMultiplier)
		c.Game.SpeedMultiplier = def.Game.SpeedMultiplier
	}
	if c.Game.WinScore <= 0 {
		log.Warn("config: non-positive win score, using default", "got", c.Game.WinScore, "using", def.Game.WinScore)
		c.Game.WinScore = def.Game.WinScore
	}
	if c.Game.SubSteps <= 0 {
		log.Warn("config: non-positive sub-step count, using default", "got", c.Game.SubSteps, "using", def.Game.SubSteps)
		c.Game.SubSteps = def.Game.SubSteps
	}
	if c.Game.MaxBallSpeed <= 0 {
		log.Warn("config: non-positive max ball speed, using default", "got", c.Game.MaxBallSpeed, "using", def.Game.MaxBallSpeed)
		c.Game.MaxBallSpeed = def.Game.MaxBallSpeed
	}
	if _, ok := sim.ParseDifficulty(c.AI.Difficulty); !ok {
		log.Warn("config: unknown AI difficulty, using default", "got", c.AI.Difficulty, "using", def.AI.Difficulty)
		c.AI.Difficulty = def.AI.Difficulty
	}
}

// Params converts the configuration into simulation tuning. The seed selects
// the RNG stream; zero means the caller did not ask for reproducibility.
func (c Config) Params(seed int64) sim.Params {
	difficulty, _ := sim.ParseDifficulty(c.AI.Difficulty)
	return sim.Params{
		BallRadius:            c.Ball.Radius,
		PaddleLength:          c.Paddle.Length,
		PaddleStep:            c.Paddle.Step,
		SubSteps:              c.Game.SubSteps,
		SpeedIncreaseInterval: c.Game.SpeedIncreaseInterval,
		SpeedMultiplier:       c.Game.SpeedMultiplier,
		MaxBallSpeed:          c.Game.MaxBallSpeed,
		MaxBounceAngle:        sim.DefaultMaxBounceAngle,
		WinScore:              c.Game.WinScore,
		Difficulty:            difficulty,
		Seed:                  seed,
	}
}
