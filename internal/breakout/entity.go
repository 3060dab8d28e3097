// Package breakout implements the breaking-bricks game: a paddle deflects
// a ball into a field of bricks, each brick shattering on first contact,
// while the player burns a token every time the ball escapes off the
// bottom of the screen.
//
// The package is pure simulation. It consumes elapsed milliseconds, a
// normalized paddle axis and a serve signal, and produces positions and
// events; rendering and input live in the platform layer.
package breakout

import "github.com/quarterslot/bricks/internal/core"

// Entity is an axis-aligned rectangular body with a velocity. Ball, Paddle
// and Brick all embed it. Position is the rectangle's top-left corner in
// pixels; velocity is in pixels per millisecond.
type Entity struct {
	Rect       core.Rect
	Vel        core.Vec
	Collidable bool
}

// Advance moves the entity by its velocity over dt milliseconds. Pure
// positional update, no collision handling.
func (e *Entity) Advance(dt float64) {
	e.Rect.X += e.Vel.X * dt
	e.Rect.Y += e.Vel.Y * dt
}

// Bounds returns the entity's rectangle.
func (e *Entity) Bounds() core.Rect {
	return e.Rect
}

// Velocity returns the entity's current velocity.
func (e *Entity) Velocity() core.Vec {
	return e.Vel
}

// Obstacle is anything the ball can bounce off. The paddle and every brick
// satisfy it; the resolver treats them uniformly and only distinguishes
// bricks to emit destruction events.
type Obstacle interface {
	Bounds() core.Rect
	Velocity() core.Vec
}
