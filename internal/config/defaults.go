package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. The embedded YAML
// carries the same values; this exists so a broken embed cannot take the
// game down.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			InitialBallSpeed: 0.25,
			MinYVelocity:     0.25,
			MaxServeAngle:    60,
			MinServeAngle:    15,
			TransferRatio:    0.10,
			SpeedupRatio:     1.01,
			MaxPaddleSpeed:   0.55,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
			Inset:  100,
		},
		Ball: BallConfig{
			Width:  20,
			Height: 20,
			StartX: 390,
			StartY: 290,
		},
		Field: FieldConfig{
			Rows:        5,
			BrickWidth:  60,
			BrickHeight: 20,
			GapX:        10,
			GapY:        10,
			TopOffset:   40,
			BrickValue:  1,
		},
		Scoring: ScoringConfig{
			// sqrt(1000): lifts squared px/ms speeds into roughly the
			// px/s range so scores read in whole points.
			SpeedFactor: 31.6227766017,
			ClearBonus:  1000,
		},
		Tokens: TokensConfig{
			Starting: 3,
		},
	}
}
