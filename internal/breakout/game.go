package breakout

import (
	"fmt"
	"math/rand"

	"github.com/quarterslot/bricks/internal/config"
	"github.com/quarterslot/bricks/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	TokenChar  = '◆'
)

// Brick glyphs cycle by row
var brickGlyphs = []rune{'█', '▓', '▒', '░', '█'}

var brickColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow,
	core.ColorGreen, core.ColorBlue,
}

// Game state constants
const (
	StateServe    = "serve"    // Ball at rest, waiting for the serve
	StatePlaying  = "playing"  // Ball in flight
	StateGameOver = "gameover" // Tokens exhausted
	StateCleared  = "cleared"  // Every brick destroyed
	StatePaused   = "paused"
)

// Tokens are drawn individually up to this count, then squeezed together.
const maxTokensBeforeStacking = 10

// configPath stores the custom config path set via CLI
var configPath string

// preset stores the difficulty preset set via CLI
var preset config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(name string) {
	switch name {
	case "easy":
		preset = config.PresetEasy
	case "normal":
		preset = config.PresetNormal
	case "hard":
		preset = config.PresetHard
	default:
		preset = ""
	}
}

// Game wires the paddle, ball, brick field and scoreboard together and
// steps them in the mandated frame order: input, paddle, ball with
// collision resolution, field cleanup, scoring.
type Game struct {
	paddle *Paddle
	ball   *Ball
	field  *Field
	board  *Scoreboard

	state   string
	runtime core.RuntimeConfig
	cfg     config.Config
	bounds  core.Rect
	rng     *rand.Rand
	tick    uint64
}

// New creates an uninitialized game; call Reset before stepping.
func New() *Game {
	return &Game{}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breaking Bricks"
}

// Reset initializes or restarts the session: fresh field, full tokens,
// zero score, ball waiting to serve.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.bounds = runtime.Field()

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	g.board = NewScoreboard(cfg.Tokens.Starting, cfg.Scoring.SpeedFactor, cfg.Scoring.ClearBonus)

	g.field = NewField(FieldLayout{
		Rows:        cfg.Field.Rows,
		BrickWidth:  cfg.Field.BrickWidth,
		BrickHeight: cfg.Field.BrickHeight,
		GapX:        cfg.Field.GapX,
		GapY:        cfg.Field.GapY,
		TopOffset:   cfg.Field.TopOffset,
		BrickValue:  cfg.Field.BrickValue,
	}, g.bounds)

	g.paddle = NewPaddle(
		g.bounds.X+(g.bounds.W-cfg.Paddle.Width)/2,
		g.bounds.Bottom()-cfg.Paddle.Inset,
		cfg.Paddle.Width, cfg.Paddle.Height,
		cfg.Physics.MaxPaddleSpeed,
	)

	startX, startY := cfg.Ball.StartX, cfg.Ball.StartY
	if startX == 0 && startY == 0 {
		startX = g.bounds.X + (g.bounds.W-cfg.Ball.Width)/2
		startY = g.bounds.Y + (g.bounds.H-cfg.Ball.Height)/2
	}
	g.ball = NewBall(startX, startY, cfg.Ball.Width, cfg.Ball.Height,
		g.paddle, g.field, BallTuning{
			InitialSpeed:  cfg.Physics.InitialBallSpeed,
			MinYVelocity:  cfg.Physics.MinYVelocity,
			MaxServeAngle: cfg.Physics.MaxServeAngle,
			MinServeAngle: cfg.Physics.MinServeAngle,
			TransferRatio: cfg.Physics.TransferRatio,
			SpeedupRatio:  cfg.Physics.SpeedupRatio,
		}, g.rng)

	g.state = StateServe
}

// Step advances the game by one frame of dt milliseconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateCleared) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateCleared {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// (b) paddle sees the input axis before the ball moves
	g.paddle.Advance(in.Axis, dt, g.bounds)

	// (c) ball motion and collision, against post-movement positions and
	// the pre-cleanup brick set
	res := g.ball.Advance(dt, g.bounds, in.Has(core.ActionServe))
	if g.ball.Served() && g.state == StateServe {
		g.state = StatePlaying
	}

	// (d) sweep destroyed bricks
	_, cleared := g.field.RemoveDestroyed()

	// (e) score and tokens from this frame's events
	for _, hit := range res.Hits {
		if !hit.Destroyed {
			continue // Paddle: physical reaction only
		}
		brick := hit.Obstacle.(*Brick)
		g.board.RecordBrickDestroyed(brick.Value, hit.Impact)
	}
	if cleared {
		g.board.RecordScreenCleared(g.ball.Vel)
		g.state = StateCleared
	}
	if res.Lost {
		g.board.LoseTokens(1)
		if g.board.Tokens() == 0 {
			g.state = StateGameOver
		} else {
			g.state = StateServe
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Tokens:   g.board.Tokens(),
		GameOver: g.state == StateGameOver,
		Cleared:  g.state == StateCleared,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state into the cell buffer, projecting
// playfield pixels onto terminal cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.bounds.W
	sy := float64(dst.Height()) / g.bounds.H

	g.renderBricks(dst, sx, sy)
	g.renderPaddle(dst, sx, sy)
	g.renderBall(dst, sx, sy)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// cellRect projects a pixel rectangle to cells, at least 1x1 so small
// entities never vanish.
func cellRect(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(r.X * sx)
	y = int(r.Y * sy)
	w = int(r.W * sx)
	h = int(r.H * sy)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func (g *Game) renderBricks(dst *core.Screen, sx, sy float64) {
	for _, brick := range g.field.Bricks() {
		if brick.Destroyed() {
			continue
		}
		x, y, w, h := cellRect(brick.Rect, sx, sy)
		row := int((brick.Rect.Y - g.cfg.Field.TopOffset) / (g.cfg.Field.BrickHeight + g.cfg.Field.GapY))
		if row < 0 {
			row = 0
		}
		glyph := brickGlyphs[row%len(brickGlyphs)]
		color := brickColors[row%len(brickColors)]
		dst.DrawRect(x, y, w, h, glyph, color)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, sx, sy float64) {
	x, y, w, _ := cellRect(g.paddle.Rect, sx, sy)
	for i := 0; i < w; i++ {
		dst.SetColored(x+i, y, PaddleChar, core.ColorCyan)
	}
}

func (g *Game) renderBall(dst *core.Screen, sx, sy float64) {
	x, y, _, _ := cellRect(g.ball.Rect, sx, sy)
	dst.SetColored(x, y, BallChar, core.ColorWhite)
}

// renderHUD draws the score bottom-right and the token row bottom-left.
// The ball is drawn before the HUD in pixels but after it here; either
// way it reads as passing over the counters.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("%d", g.board.Score())
	dst.DrawText(dst.Width()-len(scoreText)-2, dst.Height()-1, scoreText, core.ColorGold)

	// Tokens squeeze together instead of running off the screen when the
	// player has banked more than fit at normal spacing.
	tokens := g.board.Tokens()
	if tokens > 0 {
		spacing := 2
		if tokens > maxTokensBeforeStacking {
			spacing = 1
		}
		for i := 0; i < tokens; i++ {
			dst.SetColored(2+i*spacing, dst.Height()-1, TokenChar, core.ColorGold)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-2, "Press SPACE to serve", core.ColorGray)
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.board.Score()))
	case StateCleared:
		g.drawCenteredBox(dst, "SCREEN CLEARED!",
			fmt.Sprintf("Score: %d  |  Press R to play again", g.board.Score()))
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
