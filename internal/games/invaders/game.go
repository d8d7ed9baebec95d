package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry key of the game.
const GameID = "invaders"

// Game adapts a Session to the registry.Game interface the terminal
// platform drives.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.InvadersConfig
	session   *Session
	configErr error
}

// New creates an unstarted game; call Reset before Step.
func New() *Game {
	return &Game{}
}

// ID returns the registry identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset loads the tuning named by the runtime config and starts a fresh
// session. The high score of an earlier session survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.configErr = err

	if preset, err := config.ParsePreset(runtime.Difficulty); err == nil {
		config.ApplyInvadersPreset(&cfg, preset)
	}
	g.cfg = cfg

	highScore := 0
	if g.session != nil {
		highScore = g.session.HighScore()
	}
	g.session = NewSession(cfg, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
	g.session.highScore = highScore
}

// ConfigErr returns the error from the last config load, if Reset had to
// fall back to the built-in tuning.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Config returns the tuning in use.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Step(in)
	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the status the platform needs for its HUD and bookkeeping.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Level:     g.session.Wave(),
		GameOver:  g.session.Status() == StatusGameOver,
		Paused:    g.session.Paused(),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
