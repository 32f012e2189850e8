package sim

import "math"

// Default tuning values, matching the embedded configuration.
const (
	DefaultBallRadius            = 0.02
	DefaultPaddleLength          = 0.4
	DefaultPaddleStep            = 0.1
	DefaultSubSteps              = 10
	DefaultSpeedIncreaseInterval = 500
	DefaultSpeedMultiplier       = 1.1
	DefaultMaxBallSpeed          = 0.08
	DefaultWinScore              = 11
	// DefaultServeSpeed is the per-axis magnitude of the serve direction.
	DefaultServeSpeed = 0.01
)

// DefaultMaxBounceAngle is the steepest departure angle off a paddle edge.
var DefaultMaxBounceAngle = math.Pi / 3 // 60 degrees

// Params carries the tuning values consumed by the simulation. The zero
// value is not usable directly; constructors sanitize it so degenerate
// configuration can never crash the engine.
type Params struct {
	BallRadius   float64
	PaddleLength float64
	PaddleStep   float64 // paddle travel per discrete move action

	SubSteps              int // collision sub-steps per tick
	SpeedIncreaseInterval int // ticks between speed increases
	SpeedMultiplier       float64
	MaxBallSpeed          float64 // cap on post-bounce speed, units/tick
	MaxBounceAngle        float64 // radians

	WinScore   int
	Difficulty Difficulty
	Seed       int64
}

// DefaultParams returns the tuning the embedded config ships with.
func DefaultParams() Params {
	return Params{
		BallRadius:            DefaultBallRadius,
		PaddleLength:          DefaultPaddleLength,
		PaddleStep:            DefaultPaddleStep,
		SubSteps:              DefaultSubSteps,
		SpeedIncreaseInterval: DefaultSpeedIncreaseInterval,
		SpeedMultiplier:       DefaultSpeedMultiplier,
		MaxBallSpeed:          DefaultMaxBallSpeed,
		MaxBounceAngle:        DefaultMaxBounceAngle,
		WinScore:              DefaultWinScore,
		Difficulty:            DifficultyMedium,
	}
}

// sanitized returns a copy with degenerate values replaced by safe
// fallbacks. A non-positive sub-step count degrades to a single whole-tick
// step rather than failing.
func (p Params) sanitized() Params {
	if p.BallRadius <= 0 {
		p.BallRadius = DefaultBallRadius
	}
	if p.PaddleLength <= 0 {
		p.PaddleLength = DefaultPaddleLength
	}
	if p.PaddleStep <= 0 {
		p.PaddleStep = DefaultPaddleStep
	}
	if p.SubSteps <= 0 {
		p.SubSteps = 1
	}
	if p.SpeedIncreaseInterval <= 0 {
		p.SpeedIncreaseInterval = DefaultSpeedIncreaseInterval
	}
	if p.SpeedMultiplier <= 0 {
		p.SpeedMultiplier = 1.0
	}
	if p.MaxBallSpeed <= 0 {
		p.MaxBallSpeed = DefaultMaxBallSpeed
	}
	if p.MaxBounceAngle <= 0 {
		p.MaxBounceAngle = DefaultMaxBounceAngle
	}
	if p.WinScore <= 0 {
		p.WinScore = DefaultWinScore
	}
	return p
}
