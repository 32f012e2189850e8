package sim

import (
	"math"
	"math/rand"
)

// Difficulty names one of the CPU opponent's preset skill levels.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns a human-readable name for the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next returns the following difficulty in the cycle easy→medium→hard→easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// ParseDifficulty resolves a difficulty name, case-sensitively lowercase.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch name {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return DifficultyMedium, false
	}
}

// Profile is the immutable settings record behind one difficulty level.
// No profile reacts faster than every 3 ticks; that gap is what keeps the
// CPU distinguishable from a perfect tracker.
type Profile struct {
	ReactionDelay   int     // ticks between reactions
	Speed           float64 // paddle travel per reaction
	Accuracy        float64 // chance a reaction actually moves the paddle
	PredictionError float64 // magnitude of the random intercept offset
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {ReactionDelay: 15, Speed: 0.03, Accuracy: 0.70, PredictionError: 0.15},
	DifficultyMedium: {ReactionDelay: 8, Speed: 0.05, Accuracy: 0.85, PredictionError: 0.08},
	DifficultyHard:   {ReactionDelay: 3, Speed: 0.08, Accuracy: 0.95, PredictionError: 0.03},
}

// ProfileFor returns the settings for a difficulty, defaulting to medium for
// unknown values.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyMedium]
}

// AIController drives the right paddle. It predicts where the ball will
// cross the paddle plane, adds a profile-scaled error, and steps toward the
// target through the same clamped Move primitive human input uses.
type AIController struct {
	ball    Entity
	paddles *PaddleController
	rng     *rand.Rand

	difficulty Difficulty
	profile    Profile

	frames           int
	targetY          float64
	predictionOffset float64
}

// NewAIController creates a CPU opponent for the right paddle. The ball
// entity is read only.
func NewAIController(ball Entity, paddles *PaddleController, difficulty Difficulty, rng *rand.Rand) *AIController {
	return &AIController{
		ball:       ball,
		paddles:    paddles,
		rng:        rng,
		difficulty: difficulty,
		profile:    ProfileFor(difficulty),
	}
}

// Update is called once per tick with the ball's current direction. The
// controller only reacts every ReactionDelay ticks; in between it leaves the
// paddle alone.
func (ai *AIController) Update(ballDir Vec2) {
	ai.frames++
	if ai.frames%ai.profile.ReactionDelay != 0 {
		return
	}

	paddleY := ai.paddles.Position(SideRight).Y

	if ballDir.X > 0 {
		ai.predict(ai.ball.Position(), ballDir)
		// A failed accuracy roll skips the whole reaction cycle,
		// simulating a missed read.
		if ai.rng.Float64() < ai.profile.Accuracy {
			ai.stepToward(ai.targetY, paddleY, ai.profile.Speed)
		}
	} else {
		// Drift back toward center at half speed while the ball recedes.
		ai.stepToward(0, paddleY, ai.profile.Speed*0.5)
	}
}

// predict extrapolates the ball linearly to the paddle plane and folds the
// intercept back into the arena, mirroring the elastic wall bounces the ball
// will undergo before arrival.
func (ai *AIController) predict(ballPos Vec2, ballDir Vec2) {
	paddleX := ai.paddles.Position(SideRight).X
	var timeToReach float64
	if ballDir.X != 0 {
		timeToReach = (paddleX - ballPos.X) / ballDir.X
	}

	predicted := ballPos.Y + ballDir.Y*timeToReach
	for predicted < -ArenaHalfExtent || predicted > ArenaHalfExtent {
		if predicted < -ArenaHalfExtent {
			predicted = -2*ArenaHalfExtent - predicted
		} else {
			predicted = 2*ArenaHalfExtent - predicted
		}
	}

	ai.predictionOffset = (ai.rng.Float64()*2 - 1) * ai.profile.PredictionError
	ai.targetY = predicted + ai.predictionOffset
}

// stepToward moves the paddle one step toward target, snapping when closer
// than a full step. The move routes through PaddleController so it is
// clamped like any other.
func (ai *AIController) stepToward(target, current, speed float64) {
	diff := target - current
	if math.Abs(diff) > speed {
		diff = math.Copysign(speed, diff)
	}
	ai.paddles.Move(SideRight, diff)
}

// SetDifficulty switches the active profile, effective on the next Update.
// In-flight prediction state is discarded.
func (ai *AIController) SetDifficulty(d Difficulty) {
	ai.difficulty = d
	ai.profile = ProfileFor(d)
	ai.targetY = 0
	ai.predictionOffset = 0
}

// Difficulty returns the active difficulty level.
func (ai *AIController) Difficulty() Difficulty {
	return ai.difficulty
}
