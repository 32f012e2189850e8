// Package sim implements the pong simulation engine: ball kinematics and
// collision resolution, paddle motion with boundary clamping, the predictive
// CPU opponent, and the scoring state machine. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and
// testable; rendering and input live in the platform layer.
package sim

import "math"

// Arena geometry. The playfield is a square spanning [-1, 1] on both axes.
// Paddles sit on fixed vertical planes at ±PaddleX and only move in Y.
const (
	ArenaHalfExtent = 1.0
	PaddleX         = 0.9
	// CollisionBand is the thickness of the strip just inside each paddle
	// plane where a ball edge registers a hit. With the default speed cap a
	// sub-step never travels farther than this, so the ball cannot tunnel.
	CollisionBand = 0.01
)

// Vec2 is a 2D point or velocity in arena coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns the vector multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Side identifies a player and their paddle.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side, or SideNone for SideNone.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Entity is an opaque movable point the simulation positions but does not
// own. The rendering layer may back it with whatever visual representation
// it likes; the controllers only ever read and write the coordinates.
type Entity interface {
	Position() Vec2
	SetPosition(Vec2)
}

// Point is a minimal Entity backed by a plain vector. The engine uses Points
// by default so the simulation runs without any rendering toolkit behind the
// handles.
type Point struct {
	pos Vec2
}

// NewPoint creates a Point at the given coordinates.
func NewPoint(x, y float64) *Point {
	return &Point{pos: Vec2{x, y}}
}

// Position returns the current coordinates.
func (p *Point) Position() Vec2 {
	return p.pos
}

// SetPosition moves the point.
func (p *Point) SetPosition(v Vec2) {
	p.pos = v
}

// clampF restricts a float64 value to be within [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
