package breakout

import (
	"math"
	"math/rand"

	"github.com/quarterslot/bricks/internal/core"
)

// BallTuning carries the physics constants the resolver needs. The values
// come from the config package; tests build them directly.
type BallTuning struct {
	InitialSpeed  float64 // Serve speed, px/ms
	MinYVelocity  float64 // Lower bound on |vy| while in flight
	MaxServeAngle float64 // Degrees, half-range of the serve deflection
	MinServeAngle float64 // Degrees, serve dead zone
	TransferRatio float64 // Share of obstacle vx handed to the ball
	SpeedupRatio  float64 // Speed scale on every paddle/brick hit
}

// Hit describes one obstacle contact resolved during a frame.
type Hit struct {
	Obstacle  Obstacle
	Destroyed bool     // True when the obstacle was a brick and shattered
	Impact    core.Vec // Ball velocity as of this contact, post-bounce
}

// Result reports what happened to the ball in one frame.
type Result struct {
	Lost bool // Ball escaped off the bottom; a token is forfeit
	Hits []Hit
}

// Ball is the moving heart of the game: a state machine that is either
// waiting to be served or in free flight, bouncing off walls, the paddle
// and bricks. It never dies; a miss only sends it back to its starting
// position unserved.
//
// The paddle and field references are read-only associations, not
// ownership: both belong to Game.
type Ball struct {
	Entity
	tuning BallTuning
	start  core.Vec // Starting top-left corner, restored on a miss
	served bool
	paddle *Paddle
	field  *Field
	rng    *rand.Rand
}

// NewBall creates an unserved ball at (x, y). While unserved its velocity
// is exactly zero.
func NewBall(x, y, w, h float64, paddle *Paddle, field *Field, tuning BallTuning, rng *rand.Rand) *Ball {
	return &Ball{
		Entity: Entity{
			Rect:       core.NewRect(x, y, w, h),
			Collidable: true,
		},
		tuning: tuning,
		start:  core.Vec{X: x, Y: y},
		paddle: paddle,
		field:  field,
		rng:    rng,
	}
}

// Served reports whether the ball is in flight.
func (b *Ball) Served() bool {
	return b.served
}

// Advance runs one frame of the ball state machine: serve handling, motion,
// the miss check, wall bounces and obstacle bounces, in that order. Wall
// and obstacle bounces are independent; the ball can take both in the same
// frame. dt must be non-negative and bounds must have positive area; either
// violation is a contract error of the caller and panics rather than letting
// a degenerate value corrupt the physics.
func (b *Ball) Advance(dt float64, bounds core.Rect, serveRequested bool) Result {
	if dt < 0 {
		panic("breakout: ball advanced with negative dt")
	}
	if bounds.W <= 0 || bounds.H <= 0 {
		panic("breakout: ball advanced with degenerate bounds")
	}

	if !b.served {
		if !serveRequested {
			return Result{}
		}
		b.serve()
	}

	b.Entity.Advance(dt)

	// Miss: wait for the top edge to pass the bottom so the ball is seen
	// falling all the way off before it resets.
	if b.Rect.Y > bounds.Bottom() {
		b.Rect.X, b.Rect.Y = b.start.X, b.start.Y
		b.Vel = core.Vec{}
		b.served = false
		return Result{Lost: true}
	}

	// Screen edges: independent per-axis checks, no speed-up.
	if b.Rect.X < bounds.X {
		b.Vel.X = math.Abs(b.Vel.X)
	} else if b.Rect.Right() > bounds.Right() {
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Rect.Y < bounds.Y {
		b.Vel.Y = math.Abs(b.Vel.Y)
	}

	var hits []Hit
	for _, ob := range b.obstacles() {
		if !b.Rect.Intersects(ob.Bounds()) {
			continue
		}
		b.bounceOff(ob)
		hit := Hit{Obstacle: ob, Impact: b.Vel}
		if brick, ok := ob.(*Brick); ok {
			brick.destroy()
			hit.Destroyed = true
		}
		hits = append(hits, hit)
	}

	return Result{Hits: hits}
}

// obstacles lists everything the ball may bounce off this frame: the
// paddle, then the still-standing bricks. Bricks destroyed earlier in the
// frame are already excluded by Live.
func (b *Ball) obstacles() []Obstacle {
	live := b.field.Live()
	obs := make([]Obstacle, 0, len(live)+1)
	if b.paddle.Collidable {
		obs = append(obs, b.paddle)
	}
	for _, brick := range live {
		obs = append(obs, brick)
	}
	return obs
}

// serve puts the ball in flight: straight down at the initial speed, then
// rotated by a random angle. Angles inside the dead zone are pushed out to
// its edge so the ball never drops perfectly vertically, which would make
// the first return needlessly hard to angle.
func (b *Ball) serve() {
	b.served = true
	b.Vel = core.Vec{X: 0, Y: b.tuning.InitialSpeed}

	angle := b.rng.Float64()*2*b.tuning.MaxServeAngle - b.tuning.MaxServeAngle
	b.Vel = b.Vel.Rotate(clampServeAngle(angle, b.tuning.MinServeAngle))
}

// clampServeAngle pushes angles inside the dead zone out to its edge,
// preserving sign. An exactly-zero angle deflects to +minAngle.
func clampServeAngle(angle, minAngle float64) float64 {
	if math.Abs(angle) < minAngle {
		return math.Copysign(minAngle, angle)
	}
	return angle
}

// bounceOff resolves one obstacle contact: per-axis reflection from the
// overlap geometry, momentum transfer, speed-up, a positional nudge clear
// of the obstacle, and the minimum-vy invariant.
//
// Reflection forces the velocity sign away from the obstacle instead of
// negating it, so a ball already moving away is not re-reflected into the
// obstacle on a grazing double-detection.
func (b *Ball) bounceOff(ob Obstacle) {
	obr := ob.Bounds()
	reflectedX, reflectedY := false, false

	if obr.ContainsRect(b.Rect) {
		// Degenerate full containment: reflect both axes, away from
		// the obstacle's center, downward on an exact vertical tie.
		if b.Rect.Center().Y < obr.Center().Y {
			b.Vel.Y = -math.Abs(b.Vel.Y)
		} else {
			b.Vel.Y = math.Abs(b.Vel.Y)
		}
		if b.Rect.Center().X < obr.Center().X {
			b.Vel.X = -math.Abs(b.Vel.X)
		} else {
			b.Vel.X = math.Abs(b.Vel.X)
		}
		reflectedX, reflectedY = true, true
	} else {
		if b.Rect.Bottom() >= obr.Bottom() {
			b.Vel.Y = math.Abs(b.Vel.Y)
			reflectedY = true
		} else if b.Rect.Y <= obr.Y {
			b.Vel.Y = -math.Abs(b.Vel.Y)
			reflectedY = true
		}
		if b.Rect.Right() >= obr.Right() {
			b.Vel.X = math.Abs(b.Vel.X)
			reflectedX = true
		} else if b.Rect.X <= obr.X {
			b.Vel.X = -math.Abs(b.Vel.X)
			reflectedX = true
		}
	}

	// Bricks never move, so only the paddle ever contributes here.
	b.Vel.X += b.tuning.TransferRatio * ob.Velocity().X

	// Every object hit speeds the ball up slightly; the game gets harder
	// the longer a point runs.
	b.Vel = b.Vel.Scale(b.tuning.SpeedupRatio)

	// Step one unit clear of the obstacle along each reflected axis so
	// the next frame cannot detect the same contact again.
	if reflectedY {
		if b.Vel.Y < 0 {
			b.Rect.Y = obr.Y - b.Rect.H - 1
		} else {
			b.Rect.Y = obr.Bottom() + 1
		}
	}
	if reflectedX {
		if b.Vel.X < 0 {
			b.Rect.X = obr.X - b.Rect.W - 1
		} else {
			b.Rect.X = obr.Right() + 1
		}
	}

	b.enforceMinVY()
}

// enforceMinVY bounds the vertical speed away from zero. A near-horizontal
// ball could rally forever without ever finishing a point, so this is
// corrected in-band rather than treated as an error. Exactly zero vy
// deflects upward, back into the field.
func (b *Ball) enforceMinVY() {
	min := b.tuning.MinYVelocity
	if b.Vel.Y <= -min || b.Vel.Y >= min {
		return
	}
	switch {
	case b.Vel.Y > 0:
		b.Vel.Y = min
	default:
		b.Vel.Y = -min
	}
}
