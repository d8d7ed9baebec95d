// Package tui runs games in the terminal with Bubble Tea. It owns the tick
// loop, key mapping and output; games only ever see InputFrames.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	SaveScore(gameID string, score, wave int) (int64, error)
}

// EventPlayer reacts audibly to game events.
type EventPlayer interface {
	HandleEvents(events []core.Event)
}

// configReporter is implemented by games that fall back to built-in tuning
// when their config file cannot be loaded.
type configReporter interface {
	ConfigErr() error
}

// Options carries the optional collaborators of a Model. A nil field
// disables that feature.
type Options struct {
	Scores ScoreRecorder
	Sound  EventPlayer
	Logger *log.Logger
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	queue      *core.InputQueue
	keys       GameKeyMap
	help       help.Model
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	gameState  core.GameState
	quitting   bool
	back       bool
	scoreSaved bool // whether the current game over has been recorded
}

// NewModel resets game with cfg and wraps it in a model. The bottom
// terminal row is kept for the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	reportConfigErr(game, logger)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		queue:     core.NewInputQueue(),
		keys:      DefaultGameKeyMap(),
		help:      h,
		opts:      opts,
		logger:    logger,
		config:    cfg,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m = m.step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey queues game intents; quit and back end the program.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	default:
		m.queue.Push(action)
	}
	return m, nil
}

// step runs one simulation tick with every intent queued since the last.
func (m Model) step() Model {
	result := m.game.Step(m.queue.Drain())
	m.gameState = result.State

	if m.opts.Sound != nil && len(result.Events) > 0 {
		m.opts.Sound.HandleEvents(result.Events)
	}

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventReset:
			m.scoreSaved = false
			m.logger.Debug("new game", "game", m.game.ID(), "high_score", m.gameState.HighScore)
		case core.EventWaveCleared:
			m.logger.Debug("wave cleared", "wave", e.Value, "score", m.gameState.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.gameState.Score, "wave", m.gameState.Level)
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	return m
}

func reportConfigErr(game registry.Game, logger *log.Logger) {
	if r, ok := game.(configReporter); ok {
		if err := r.ConfigErr(); err != nil {
			logger.Warn("using built-in tuning", "game", game.ID(), "err", err)
		}
	}
}

func (m Model) saveScore() {
	if m.opts.Scores == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Scores.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.logger.Warn("could not save score", "err", err)
	}
}

// View renders the board followed by the help line.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game status as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// WentBack reports whether the player asked to return to the menu.
func (m Model) WentBack() bool {
	return m.back
}

// Run plays game until the player quits or goes back. It reports whether
// the player chose to go back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.WentBack(), nil
}
