package breakout

import (
	"fmt"
	"hash/fnv"
)

// Snapshot is a flat copy of the observable game state, used by the
// determinism tests. Primitive fields only, so two runs can be compared
// with a stable hash.
type Snapshot struct {
	Tick    uint64
	State   string
	Score   int
	Tokens  int
	PaddleX float64
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	Served  bool

	BricksRemaining int
	BrickAlive      []bool
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	bricks := g.field.Bricks()
	alive := make([]bool, len(bricks))
	for i, b := range bricks {
		alive[i] = !b.Destroyed()
	}

	return Snapshot{
		Tick:            g.tick,
		State:           g.state,
		Score:           g.board.Score(),
		Tokens:          g.board.Tokens(),
		PaddleX:         g.paddle.Rect.X,
		BallX:           g.ball.Rect.X,
		BallY:           g.ball.Rect.Y,
		BallVX:          g.ball.Vel.X,
		BallVY:          g.ball.Vel.Y,
		Served:          g.ball.Served(),
		BricksRemaining: g.field.Remaining(),
		BrickAlive:      alive,
	}
}

// Hash returns a stable digest of the snapshot for equality checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%d|%d|%v|%v|%v|%v|%v|%v|%d",
		s.Tick, s.State, s.Score, s.Tokens,
		s.PaddleX, s.BallX, s.BallY, s.BallVX, s.BallVY,
		s.Served, s.BricksRemaining)
	for _, a := range s.BrickAlive {
		if a {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}
