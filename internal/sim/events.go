package sim

// Events is an optional set of observer hooks the engine invokes as the
// simulation runs. Consumers (visual flashes, sound, persistence) may set
// any subset; nil hooks are skipped. Hooks must not mutate core state and
// are always called synchronously on the tick that produced the event.
type Events struct {
	// PaddleHit fires when the ball bounces off a paddle.
	PaddleHit func(side Side)

	// Score fires when a side is awarded a point.
	Score func(side Side)

	// WallHit fires when the ball bounces off the top or bottom wall.
	WallHit func()

	// GameOver fires exactly once per match, when a side reaches the win
	// threshold.
	GameOver func(winner Side)
}

func (e Events) paddleHit(side Side) {
	if e.PaddleHit != nil {
		e.PaddleHit(side)
	}
}

func (e Events) score(side Side) {
	if e.Score != nil {
		e.Score(side)
	}
}

func (e Events) wallHit() {
	if e.WallHit != nil {
		e.WallHit()
	}
}

func (e Events) gameOver(winner Side) {
	if e.GameOver != nil {
		e.GameOver(winner)
	}
}
