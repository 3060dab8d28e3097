package breakout

import (
	"math"

	"github.com/quarterslot/bricks/internal/core"
)

// Scoreboard accumulates the score and the player's remaining tokens for
// one session. It is created at session start and reset on restart; it is
// plain owned state, never global. Score only ever goes up; tokens floor
// at zero, and reaching zero is how game over is signaled.
type Scoreboard struct {
	score       int
	tokens      int
	speedFactor float64
	clearBonus  int
}

// NewScoreboard creates a scoreboard with the starting token count.
func NewScoreboard(startTokens int, speedFactor float64, clearBonus int) *Scoreboard {
	return &Scoreboard{
		tokens:      startTokens,
		speedFactor: speedFactor,
		clearBonus:  clearBonus,
	}
}

// Score returns the current score.
func (s *Scoreboard) Score() int {
	return s.score
}

// Tokens returns the remaining token count.
func (s *Scoreboard) Tokens() int {
	return s.tokens
}

// RecordBrickDestroyed awards points for a shattered brick. The faster the
// ball at impact, the more points; a hit is always worth at least 1.
func (s *Scoreboard) RecordBrickDestroyed(baseValue int, vel core.Vec) {
	s.add(baseValue, vel)
}

// RecordScreenCleared awards the clear bonus, scaled by the ball's speed
// at the moment the last brick fell.
func (s *Scoreboard) RecordScreenCleared(vel core.Vec) {
	s.add(s.clearBonus, vel)
}

// add applies the common scoring formula. The squared magnitude avoids a
// square root; speedFactor rescales the tiny px/ms speeds into points.
func (s *Scoreboard) add(base int, vel core.Vec) {
	points := int(math.Round(s.speedFactor * vel.LenSq() * float64(base)))
	if points < 1 {
		points = 1
	}
	s.score += points
}

// LoseTokens removes tokens, flooring at zero.
func (s *Scoreboard) LoseTokens(n int) {
	s.tokens -= n
	if s.tokens < 0 {
		s.tokens = 0
	}
}

// AddTokens grants tokens. Reserved for future bonus bricks; nothing in
// the base game calls it yet.
func (s *Scoreboard) AddTokens(n int) {
	s.tokens += n
}
