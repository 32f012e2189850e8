package sim

import (
	"math"
	"math/rand"
)

// BallController exclusively owns the ball's direction vector and drives its
// position handle. Each tick is divided into sub-steps so a fast ball cannot
// tunnel through a paddle between collision checks. Paddle handles are read
// only; all score transitions go through the ScoreManager.
type BallController struct {
	ball   Entity
	left   Entity
	right  Entity
	score  *ScoreManager
	events Events
	params Params
	rng    *rand.Rand

	direction    Vec2
	ticks        int
	rally        int
	longestRally int
}

// NewBallController creates a ball controller. The paddle entities are only
// read for collision checks, never moved.
func NewBallController(ball, left, right Entity, score *ScoreManager, params Params, events Events, rng *rand.Rand) *BallController {
	return &BallController{
		ball:   ball,
		left:   left,
		right:  right,
		score:  score,
		events: events,
		params: params.sanitized(),
		rng:    rng,
	}
}

// Reset places the ball at the arena center and serves it in a random
// horizontal direction with a small random vertical offset. The offset is
// bounded by the serve speed itself, so the serve angle never exceeds 45°.
func (bc *BallController) Reset() {
	bc.ball.SetPosition(Vec2{})

	dx := DefaultServeSpeed
	if bc.rng.Intn(2) == 0 {
		dx = -dx
	}
	dy := (bc.rng.Float64()*2 - 1) * DefaultServeSpeed
	bc.direction = Vec2{dx, dy}

	bc.ticks = 0
	bc.rally = 0
	bc.longestRally = 0
}

// Tick advances the simulation by one frame. The move is split into equal
// sub-steps; after each sub-step collisions are resolved and the position is
// committed. Speed increases happen once per tick, never per sub-step.
func (bc *BallController) Tick() {
	bc.ticks++
	if bc.ticks%bc.params.SpeedIncreaseInterval == 0 {
		bc.direction = bc.direction.Scale(bc.params.SpeedMultiplier)
	}

	fraction := 1.0 / float64(bc.params.SubSteps)
	for range bc.params.SubSteps {
		pos := bc.ball.Position().Add(bc.direction.Scale(fraction))
		pos = bc.collidePaddles(pos)
		pos = bc.collideWalls(pos)
		bc.ball.SetPosition(pos)
	}
}

// collidePaddles bounces the ball off a paddle when its leading edge sits in
// the collision band and its Y overlaps the paddle. The direction-sign check
// is mandatory: a ball grazing the band while receding must not bounce
// again.
func (bc *BallController) collidePaddles(pos Vec2) Vec2 {
	r := bc.params.BallRadius
	hh := bc.params.PaddleLength / 2

	if bc.direction.X < 0 {
		lead := pos.X - r
		paddleY := bc.left.Position().Y
		if lead >= -PaddleX && lead <= -PaddleX+CollisionBand &&
			pos.Y >= paddleY-hh && pos.Y <= paddleY+hh {
			// Push back out by twice the penetration so the next sub-step
			// cannot re-enter the band.
			overlap := (-PaddleX + CollisionBand) - lead
			pos.X += 2 * overlap
			bc.bounce(SideLeft, pos.Y-paddleY, hh)
		}
	} else if bc.direction.X > 0 {
		lead := pos.X + r
		paddleY := bc.right.Position().Y
		if lead >= PaddleX-CollisionBand && lead <= PaddleX &&
			pos.Y >= paddleY-hh && pos.Y <= paddleY+hh {
			overlap := lead - (PaddleX - CollisionBand)
			pos.X -= 2 * overlap
			bc.bounce(SideRight, pos.Y-paddleY, hh)
		}
	}
	return pos
}

// bounce remaps the outgoing direction from where the ball struck the
// paddle: center hits return flat, edge hits return at up to the maximum
// bounce angle. Speed is preserved but capped.
func (bc *BallController) bounce(side Side, offsetY, halfHeight float64) {
	norm := clampF(offsetY/halfHeight, -1, 1)
	angle := norm * bc.params.MaxBounceAngle
	speed := math.Min(bc.direction.Len(), bc.params.MaxBallSpeed)

	dx := speed * math.Cos(angle)
	if side == SideRight {
		dx = -dx
	}
	bc.direction = Vec2{dx, speed * math.Sin(angle)}

	bc.rally++
	bc.events.paddleHit(side)
}

// collideWalls clamps the ball inside the arena. Top/bottom walls reflect
// the vertical component; left/right walls end the rally and award a point
// to the opposing side.
func (bc *BallController) collideWalls(pos Vec2) Vec2 {
	r := bc.params.BallRadius

	if pos.Y-r < -ArenaHalfExtent {
		pos.Y = -ArenaHalfExtent + r
		bc.direction.Y = -bc.direction.Y
		bc.events.wallHit()
	} else if pos.Y+r > ArenaHalfExtent {
		pos.Y = ArenaHalfExtent - r
		bc.direction.Y = -bc.direction.Y
		bc.events.wallHit()
	}

	if pos.X-r < -ArenaHalfExtent {
		pos.X = -ArenaHalfExtent + r
		bc.direction.X = -bc.direction.X
		bc.endRally()
		bc.score.ScorePoint(SideRight)
		bc.events.score(SideRight)
	} else if pos.X+r > ArenaHalfExtent {
		pos.X = ArenaHalfExtent - r
		bc.direction.X = -bc.direction.X
		bc.endRally()
		bc.score.ScorePoint(SideLeft)
		bc.events.score(SideLeft)
	}
	return pos
}

func (bc *BallController) endRally() {
	if bc.rally > bc.longestRally {
		bc.longestRally = bc.rally
	}
	bc.rally = 0
}

// Direction returns the current velocity vector (units/tick).
func (bc *BallController) Direction() Vec2 {
	return bc.direction
}

// Ticks returns the number of ticks since the last reset.
func (bc *BallController) Ticks() int {
	return bc.ticks
}

// Rally returns the consecutive paddle hits since the last point.
func (bc *BallController) Rally() int {
	return bc.rally
}

// LongestRally returns the longest rally observed since the last reset.
func (bc *BallController) LongestRally() int {
	return bc.longestRally
}
