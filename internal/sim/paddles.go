package sim

// PaddleController owns both paddle positions. Paddles are written from two
// independent sources, human input and the CPU opponent, so every move goes
// through Move and its boundary clamp; no caller sets a paddle position
// directly.
type PaddleController struct {
	left       Entity
	right      Entity
	halfHeight float64
	step       float64
}

// NewPaddleController creates a controller for the two paddle handles.
func NewPaddleController(left, right Entity, params Params) *PaddleController {
	params = params.sanitized()
	return &PaddleController{
		left:       left,
		right:      right,
		halfHeight: params.PaddleLength / 2,
		step:       params.PaddleStep,
	}
}

// Move adds dy to the named paddle's vertical position and clamps the result
// so the paddle never leaves the arena. Unknown sides are a no-op.
func (pc *PaddleController) Move(side Side, dy float64) {
	var e Entity
	switch side {
	case SideLeft:
		e = pc.left
	case SideRight:
		e = pc.right
	default:
		return
	}
	pos := e.Position()
	pos.Y = pc.clamp(pos.Y + dy)
	e.SetPosition(pos)
}

// Position returns the named paddle's current position. Unknown sides return
// the zero vector.
func (pc *PaddleController) Position(side Side) Vec2 {
	switch side {
	case SideLeft:
		return pc.left.Position()
	case SideRight:
		return pc.right.Position()
	default:
		return Vec2{}
	}
}

// ResetPositions recenters both paddles vertically, preserving their fixed X.
func (pc *PaddleController) ResetPositions() {
	for _, e := range []Entity{pc.left, pc.right} {
		pos := e.Position()
		pos.Y = 0
		e.SetPosition(pos)
	}
}

// Step returns the paddle travel applied per discrete move action.
func (pc *PaddleController) Step() float64 {
	return pc.step
}

// HalfHeight returns half the configured paddle length.
func (pc *PaddleController) HalfHeight() float64 {
	return pc.halfHeight
}

func (pc *PaddleController) clamp(y float64) float64 {
	return clampF(y, -ArenaHalfExtent+pc.halfHeight, ArenaHalfExtent-pc.halfHeight)
}
