package sim

import (
	"math"
	"math/rand"
	"testing"
)

type ballFixture struct {
	ball  *BallController
	ent   *Point
	left  *Point
	right *Point
	score *ScoreManager
}

func newBallFixture(params Params) *ballFixture {
	ent := NewPoint(0, 0)
	left := NewPoint(-PaddleX, 0)
	right := NewPoint(PaddleX, 0)
	score := NewScoreManager(params.WinScore, nil)
	rng := rand.New(rand.NewSource(7))
	bc := NewBallController(ent, left, right, score, params, Events{}, rng)
	return &ballFixture{ball: bc, ent: ent, left: left, right: right, score: score}
}

func TestBallTickNoCollision(t *testing.T) {
	f := newBallFixture(DefaultParams())
	f.ball.direction = Vec2{0.01, 0.01}

	f.ball.Tick()

	pos := f.ent.Position()
	if math.Abs(pos.X-0.01) > 1e-9 || math.Abs(pos.Y-0.01) > 1e-9 {
		t.Errorf("position after 1 tick = %+v, want (0.01, 0.01)", pos)
	}
}

func TestBallSpeedIncreaseEveryInterval(t *testing.T) {
	params := DefaultParams() // interval 500, multiplier 1.1
	f := newBallFixture(params)
	f.ball.direction = Vec2{0.01, 0.01}

	for range 500 {
		f.ball.Tick()
	}

	dir := f.ball.Direction()
	// Wall bounces along the way only flip signs, never the magnitude.
	if math.Abs(math.Abs(dir.X)-0.011) > 1e-9 {
		t.Errorf("|direction.X| after 500 ticks = %v, want 0.011", math.Abs(dir.X))
	}
	if math.Abs(math.Abs(dir.Y)-0.011) > 1e-9 {
		t.Errorf("|direction.Y| after 500 ticks = %v, want 0.011", math.Abs(dir.Y))
	}
}

func TestBallCenterHitReturnsFlat(t *testing.T) {
	f := newBallFixture(DefaultParams())
	f.ent.SetPosition(Vec2{-0.87, 0})
	f.ball.direction = Vec2{-0.01, 0}

	f.ball.Tick()

	dir := f.ball.Direction()
	if dir.X <= 0 {
		t.Errorf("direction.X = %v, want positive after left paddle bounce", dir.X)
	}
	if dir.Y != 0 {
		t.Errorf("direction.Y = %v, want 0 for a dead-center hit", dir.Y)
	}
	if f.ball.Rally() != 1 {
		t.Errorf("rally = %d, want 1 after one paddle hit", f.ball.Rally())
	}
}

func TestBallEdgeHitReturnsSteep(t *testing.T) {
	params := DefaultParams()
	f := newBallFixture(params)
	// Strike the very top of the left paddle (half-height 0.2).
	f.ent.SetPosition(Vec2{-0.87, 0.2})
	f.ball.direction = Vec2{-0.01, 0}

	f.ball.Tick()

	dir := f.ball.Direction()
	speed := 0.01
	wantY := speed * math.Sin(params.MaxBounceAngle)
	wantX := speed * math.Cos(params.MaxBounceAngle)
	if math.Abs(dir.Y-wantY) > 1e-6 {
		t.Errorf("direction.Y = %v, want %v (speed*sin(60°))", dir.Y, wantY)
	}
	if math.Abs(dir.X-wantX) > 1e-6 {
		t.Errorf("direction.X = %v, want %v (speed*cos(60°))", dir.X, wantX)
	}
}

func TestBallInBandButRecedingDoesNotBounce(t *testing.T) {
	f := newBallFixture(DefaultParams())
	// Inside the left paddle band but moving away from the paddle.
	f.ent.SetPosition(Vec2{-0.872, 0})
	f.ball.direction = Vec2{0.01, 0}

	f.ball.Tick()

	if dir := f.ball.Direction(); dir.X != 0.01 {
		t.Errorf("direction.X = %v, want unchanged 0.01 (no double bounce)", dir.X)
	}
	if f.ball.Rally() != 0 {
		t.Errorf("rally = %d, want 0", f.ball.Rally())
	}
}

func TestBallApproachingWithinPaddleRangeBounces(t *testing.T) {
	f := newBallFixture(DefaultParams())
	// Left paddle at Y=0 with half-height 0.2; ball at Y=0.1 must bounce.
	f.ent.SetPosition(Vec2{-0.87, 0.1})
	f.ball.direction = Vec2{-0.01, 0}

	f.ball.Tick()

	if dir := f.ball.Direction(); dir.X <= 0 {
		t.Errorf("direction.X = %v, want sign flip (bounce)", dir.X)
	}
}

func TestBallScoringWall(t *testing.T) {
	f := newBallFixture(DefaultParams())
	// Above the right paddle so it sails past and hits the right wall.
	f.ent.SetPosition(Vec2{0.98, 0.5})
	f.ball.direction = Vec2{0.01, 0}
	f.ball.rally = 4

	f.ball.Tick()

	left, right := f.score.Scores()
	if left != 1 || right != 0 {
		t.Errorf("scores = %d, %d; want 1, 0 (left scores on right wall)", left, right)
	}
	if f.ball.Rally() != 0 {
		t.Errorf("rally = %d, want 0 after a point", f.ball.Rally())
	}
	if f.ball.LongestRally() != 4 {
		t.Errorf("longest rally = %d, want 4", f.ball.LongestRally())
	}
	if dir := f.ball.Direction(); dir.X >= 0 {
		t.Errorf("direction.X = %v, want flipped after wall", dir.X)
	}
}

func TestBallStaysInsideArena(t *testing.T) {
	params := DefaultParams()
	f := newBallFixture(params)
	f.ball.direction = Vec2{0.013, 0.009}
	r := params.BallRadius

	for i := range 3000 {
		f.ball.Tick()
		pos := f.ent.Position()
		if pos.X < -ArenaHalfExtent+r-1e-9 || pos.X > ArenaHalfExtent-r+1e-9 {
			t.Fatalf("ball escaped on X at tick %d: %+v", i, pos)
		}
		if pos.Y < -ArenaHalfExtent+r-1e-9 || pos.Y > ArenaHalfExtent-r+1e-9 {
			t.Fatalf("ball escaped on Y at tick %d: %+v", i, pos)
		}
	}
}

func TestBallSubStepFallback(t *testing.T) {
	params := DefaultParams()
	params.SubSteps = -3 // degenerate; must degrade to one whole-tick step
	f := newBallFixture(params)
	f.ball.direction = Vec2{0.01, 0}

	f.ball.Tick()

	if got := f.ent.Position().X; math.Abs(got-0.01) > 1e-9 {
		t.Errorf("position.X = %v, want 0.01 from a single whole step", got)
	}
}

func TestBallResetServesRandomly(t *testing.T) {
	f := newBallFixture(DefaultParams())
	f.ball.direction = Vec2{0.05, 0.05}
	f.ball.ticks = 400
	f.ball.rally = 3
	f.ball.longestRally = 9

	f.ball.Reset()

	if pos := f.ent.Position(); pos != (Vec2{}) {
		t.Errorf("ball position after reset = %+v, want origin", pos)
	}
	dir := f.ball.Direction()
	if math.Abs(math.Abs(dir.X)-DefaultServeSpeed) > 1e-9 {
		t.Errorf("|direction.X| = %v, want serve speed %v", math.Abs(dir.X), DefaultServeSpeed)
	}
	// Vertical offset is bounded so the serve angle stays at or below 45°.
	if math.Abs(dir.Y) > DefaultServeSpeed {
		t.Errorf("|direction.Y| = %v exceeds serve speed", math.Abs(dir.Y))
	}
	if f.ball.Ticks() != 0 || f.ball.Rally() != 0 || f.ball.LongestRally() != 0 {
		t.Error("reset should zero tick, rally and longest-rally counters")
	}
}

func TestBallPaddleHitEventAndPushback(t *testing.T) {
	var hits []Side
	params := DefaultParams()
	ent := NewPoint(-0.87, 0)
	left := NewPoint(-PaddleX, 0)
	right := NewPoint(PaddleX, 0)
	score := NewScoreManager(params.WinScore, nil)
	events := Events{PaddleHit: func(s Side) { hits = append(hits, s) }}
	bc := NewBallController(ent, left, right, score, params, events, rand.New(rand.NewSource(1)))
	bc.direction = Vec2{-0.01, 0}

	bc.Tick()

	if len(hits) != 1 || hits[0] != SideLeft {
		t.Fatalf("paddle hit events = %v, want one left hit", hits)
	}
	// The pushback must leave the ball clear of the band so the next tick
	// cannot re-trigger the same collision.
	bc.Tick()
	if len(hits) != 1 {
		t.Errorf("paddle hit events after second tick = %v, want still one", hits)
	}
}
