package breakout

import "github.com/quarterslot/bricks/internal/core"

// Paddle is the player-controlled deflector near the bottom of the
// playfield. Exactly one exists per game, owned by Game; the ball holds a
// read-only reference for collision checks. Its velocity is derived from
// the input axis each frame so momentum transfer to the ball sees the real
// paddle speed; vertical velocity is always zero.
type Paddle struct {
	Entity
	maxSpeed float64 // px/ms at full axis deflection
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y, w, h, maxSpeed float64) *Paddle {
	return &Paddle{
		Entity: Entity{
			Rect:       core.NewRect(x, y, w, h),
			Collidable: true,
		},
		maxSpeed: maxSpeed,
	}
}

// Advance maps the normalized input axis to horizontal motion and keeps
// the paddle inside the playfield. axis is clamped to [-1, 1]; dt is
// milliseconds and must be non-negative.
func (p *Paddle) Advance(axis, dt float64, bounds core.Rect) {
	if dt < 0 {
		panic("breakout: paddle advanced with negative dt")
	}

	axis = core.ClampF(axis, -1, 1)
	p.Vel.X = axis * p.maxSpeed
	p.Rect.X += p.Vel.X * dt

	// Push back into bounds rather than stopping at the wall. The right
	// clamp runs second so a paddle wider than the field pins right.
	if p.Rect.X < bounds.X {
		p.Rect.X = bounds.X
	}
	if p.Rect.Right() > bounds.Right() {
		p.Rect.X = bounds.Right() - p.Rect.W
	}
}
