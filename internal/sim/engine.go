package sim

import "math/rand"

// Engine wires the controllers together and enforces the per-tick ordering:
// the ball is fully sub-stepped and any resulting score transition resolved
// before the CPU reacts to the tick's direction, so a Snapshot always
// observes a fully-resolved tick. All methods must be called from a single
// goroutine; the engine does no locking and no I/O.
type Engine struct {
	params Params
	events Events
	rng    *rand.Rand

	ballEntity  Entity
	leftPaddle  Entity
	rightPaddle Entity

	ball    *BallController
	paddles *PaddleController
	score   *ScoreManager
	ai      *AIController

	aiEnabled bool
	paused    bool
}

// Snapshot is a read-only view of a fully-resolved tick, for the rendering
// layer and for persistence. It carries no references into the engine.
type Snapshot struct {
	Tick         int
	Ball         Vec2
	BallDir      Vec2
	LeftPaddleY  float64
	RightPaddleY float64
	ScoreLeft    int
	ScoreRight   int
	Rally        int
	LongestRally int
	GameOver     bool
	Winner       Side
	Paused       bool
	AIEnabled    bool
	Difficulty   Difficulty
}

// NewEngine builds a ready-to-play engine. Degenerate params are replaced by
// safe defaults. Events hooks may be the zero value.
func NewEngine(params Params, events Events) *Engine {
	params = params.sanitized()

	seed := params.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	e := &Engine{
		params:      params,
		events:      events,
		rng:         rng,
		ballEntity:  NewPoint(0, 0),
		leftPaddle:  NewPoint(-PaddleX, 0),
		rightPaddle: NewPoint(PaddleX, 0),
	}

	e.paddles = NewPaddleController(e.leftPaddle, e.rightPaddle, params)
	e.score = NewScoreManager(params.WinScore, events.gameOver)
	e.ball = NewBallController(e.ballEntity, e.leftPaddle, e.rightPaddle, e.score, params, events, rng)
	e.ai = NewAIController(e.ballEntity, e.paddles, params.Difficulty, rng)

	e.ball.Reset()
	return e
}

// Tick advances the simulation by one frame. While paused or after game
// over, ticks are skipped entirely; discrete input still flows through
// Apply.
func (e *Engine) Tick() {
	if e.paused || e.score.GameOver() {
		return
	}

	e.ball.Tick()

	if e.aiEnabled && !e.score.GameOver() {
		e.ai.Update(e.ball.Direction())
	}
}

// Apply handles one discrete input action. Unmapped actions are ignored
// without error. Paddle moves are processed even while paused, matching the
// pause semantics: only ball and CPU updates freeze.
func (e *Engine) Apply(action Action) {
	switch action {
	case ActionLeftUp:
		e.paddles.Move(SideLeft, e.paddles.Step())
	case ActionLeftDown:
		e.paddles.Move(SideLeft, -e.paddles.Step())
	case ActionRightUp:
		e.paddles.Move(SideRight, e.paddles.Step())
	case ActionRightDown:
		e.paddles.Move(SideRight, -e.paddles.Step())
	case ActionPause:
		e.TogglePause()
	case ActionReset:
		e.Reset()
	case ActionToggleAI:
		e.aiEnabled = !e.aiEnabled
	case ActionCycleDifficulty:
		e.ai.SetDifficulty(e.ai.Difficulty().Next())
	default:
		// Unmapped input is not an error.
	}
}

// TogglePause flips the pause flag. Ignored once the match is over; Reset is
// the only way out of game over.
func (e *Engine) TogglePause() {
	if e.score.GameOver() {
		return
	}
	e.paused = !e.paused
}

// Reset restarts the match: ball re-served, paddles recentered, scores
// zeroed, pause cleared.
func (e *Engine) Reset() {
	e.ball.Reset()
	e.paddles.ResetPositions()
	e.score.Reset()
	e.paused = false
}

// Paused reports whether the simulation is frozen.
func (e *Engine) Paused() bool {
	return e.paused
}

// AIEnabled reports whether the CPU controls the right paddle.
func (e *Engine) AIEnabled() bool {
	return e.aiEnabled
}

// SetAIEnabled switches the right paddle between human and CPU control.
func (e *Engine) SetAIEnabled(enabled bool) {
	e.aiEnabled = enabled
}

// Difficulty returns the CPU's active difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.ai.Difficulty()
}

// SetDifficulty switches the CPU difficulty, effective next tick.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.ai.SetDifficulty(d)
}

// Params returns the sanitized tuning the engine runs with.
func (e *Engine) Params() Params {
	return e.params
}

// Snapshot captures the current state for display or persistence.
func (e *Engine) Snapshot() Snapshot {
	left, right := e.score.Scores()
	winner, _ := e.score.Winner()
	return Snapshot{
		Tick:         e.ball.Ticks(),
		Ball:         e.ballEntity.Position(),
		BallDir:      e.ball.Direction(),
		LeftPaddleY:  e.leftPaddle.Position().Y,
		RightPaddleY: e.rightPaddle.Position().Y,
		ScoreLeft:    left,
		ScoreRight:   right,
		Rally:        e.ball.Rally(),
		LongestRally: e.ball.LongestRally(),
		GameOver:     e.score.GameOver(),
		Winner:       winner,
		Paused:       e.paused,
		AIEnabled:    e.aiEnabled,
		Difficulty:   e.ai.Difficulty(),
	}
}
