// Package config provides YAML-based tuning for the bricks game. Every
// physics threshold is a configuration value, not hard-coded law: the serve
// dead zone, the speed-up ratio and friends have all drifted between
// versions of this game, so they live here where they can keep drifting.
package config

// Config is the complete tuning set for one game session.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Field   FieldConfig   `yaml:"field"`
	Scoring ScoringConfig `yaml:"scoring"`
	Tokens  TokensConfig  `yaml:"tokens"`
}

// PhysicsConfig defines ball and paddle motion parameters.
// All speeds are in pixels per millisecond.
type PhysicsConfig struct {
	// InitialBallSpeed is the serve speed and, unless overridden, the
	// minimum |vy| the ball is ever allowed while in flight.
	InitialBallSpeed float64 `yaml:"initial_ball_speed"`
	// MinYVelocity bounds |vy| away from zero after every bounce.
	// Zero means "use initial_ball_speed".
	MinYVelocity float64 `yaml:"min_y_velocity"`
	// MaxServeAngle is the half-range in degrees of the random serve
	// deflection.
	MaxServeAngle float64 `yaml:"max_serve_angle"`
	// MinServeAngle is the dead zone: serve angles closer to vertical
	// than this are pushed out to it, preserving sign.
	MinServeAngle float64 `yaml:"min_serve_angle"`
	// TransferRatio is the share of an obstacle's horizontal velocity
	// handed to the ball on contact. Only the paddle ever moves, so in
	// practice this is the paddle spin control.
	TransferRatio float64 `yaml:"transfer_ratio"`
	// SpeedupRatio scales the ball's speed on every paddle or brick hit.
	// Wall bounces do not speed the ball up.
	SpeedupRatio float64 `yaml:"speedup_ratio"`
	// MaxPaddleSpeed is the paddle speed at full input deflection.
	MaxPaddleSpeed float64 `yaml:"max_paddle_speed"`
}

// PaddleConfig defines the paddle's dimensions and resting height.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Inset is the distance from the bottom of the playfield to the
	// paddle's top edge.
	Inset float64 `yaml:"inset"`
}

// BallConfig defines the ball's dimensions and starting position.
// A zero StartX/StartY means "center of the playfield".
type BallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// FieldConfig defines the brick grid. The column count is not configured:
// it is computed from the brick width, gap and playfield width, and the
// grid is centered horizontally.
type FieldConfig struct {
	Rows        int     `yaml:"rows"`
	BrickWidth  float64 `yaml:"brick_width"`
	BrickHeight float64 `yaml:"brick_height"`
	GapX        float64 `yaml:"gap_x"`
	GapY        float64 `yaml:"gap_y"`
	// TopOffset leaves headroom above the first brick row.
	TopOffset float64 `yaml:"top_offset"`
	// BrickValue is the base score value of a brick. 1 for normal
	// bricks; future special bricks would carry 5 or 10.
	BrickValue int `yaml:"brick_value"`
}

// ScoringConfig defines score arithmetic.
type ScoringConfig struct {
	// SpeedFactor rescales the squared ball speed (a very small px/ms
	// quantity) into a human-friendly point range.
	SpeedFactor float64 `yaml:"speed_factor"`
	// ClearBonus is the base value applied when the last brick falls.
	ClearBonus int `yaml:"clear_bonus"`
}

// TokensConfig defines the lives system.
type TokensConfig struct {
	Starting int `yaml:"starting"`
}

// Preset is a named difficulty preset applied on top of the loaded config.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset overrides tuning values for a named preset. Unknown presets
// leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.InitialBallSpeed = 0.20
		cfg.Physics.MinYVelocity = 0.20
		cfg.Paddle.Width = 140
		cfg.Tokens.Starting = 5
	case PresetHard:
		cfg.Physics.InitialBallSpeed = 0.32
		cfg.Physics.MinYVelocity = 0.32
		cfg.Physics.SpeedupRatio = 1.02
		cfg.Paddle.Width = 80
		cfg.Tokens.Starting = 2
	case PresetNormal:
		// The shipped defaults are the normal preset.
	}
}
