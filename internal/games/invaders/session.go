package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Status is the top-level state of a session.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "playing"
}

// Session owns one game: the ship, the aliens, every bullet, the score and
// the high score. It is advanced by Step once per tick and is not safe for
// concurrent use; hosts feed it through a core.InputQueue.
type Session struct {
	cfg config.InvadersConfig

	waves     *WaveGenerator
	formation *Formation
	combat    *CombatResolver

	field     battlefield
	status    Status
	paused    bool
	highScore int
	tick      uint64

	lastShot uint64
	hasShot  bool
}

// NewSession builds a session in StatusPlaying with the first wave in place.
// rng is the only source of randomness, so equal seeds and equal inputs
// replay identically.
func NewSession(cfg config.InvadersConfig, rng *rand.Rand) *Session {
	waves := NewWaveGenerator(cfg, rng)
	s := &Session{
		cfg:       cfg,
		waves:     waves,
		formation: NewFormation(cfg.Aliens.Speed, cfg.Board.Width(), cfg.Aliens.Height),
		combat:    NewCombatResolver(cfg, waves, rng),
	}
	s.field.ship = NewShip(s.shipStartX(), s.shipY(), cfg.Player.Width, cfg.Player.Height)
	s.restart()
	return s
}

func (s *Session) shipStartX() int {
	b := s.cfg.Board
	return b.TileSize*b.Columns/2 - b.TileSize
}

func (s *Session) shipY() int {
	return s.cfg.Board.ShipY()
}

// restart puts everything except the high score back to the opening state.
func (s *Session) restart() {
	f := &s.field
	f.ship.X = s.shipStartX()
	f.playerBullets = nil
	f.alienBullets = nil
	f.score = 0
	f.wave = 1
	f.lost = false
	f.columns, f.rows = s.waves.InitialSize()
	f.aliens = s.waves.BuildWave(f.columns, f.rows)
	f.alienCount = len(f.aliens)

	s.formation.Reset()
	s.status = StatusPlaying
	s.paused = false
	s.tick = 0
	s.hasShot = false
}

// Reset starts a new game regardless of the current status.
func (s *Session) Reset() {
	s.restart()
}

// Step applies the intents queued for this tick and, while playing,
// advances the simulation by one fixed step. It returns what happened.
//
// In StatusGameOver only Confirm or Restart do anything: they start a new
// game. Pause toggles freeze the simulation without ending it.
func (s *Session) Step(in core.InputFrame) []core.Event {
	s.field.events = nil

	if s.status == StatusGameOver {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			s.restart()
			s.field.emit(core.EventReset, 0)
		}
		return s.field.events
	}

	if in.Count(core.ActionPause)%2 == 1 {
		s.paused = !s.paused
	}
	if s.paused {
		return s.field.events
	}

	s.tick++
	s.applyIntents(in)

	if s.formation.Advance(s.field.aliens, s.field.ship.Y) {
		s.field.lost = true
	}
	s.combat.Advance(&s.field)

	if s.field.lost {
		s.status = StatusGameOver
		s.highScore = max(s.highScore, s.field.score)
		s.field.emit(core.EventGameOver, s.field.score)
	}
	return s.field.events
}

// applyIntents moves the ship one step per move intent and fires at most once.
func (s *Session) applyIntents(in core.InputFrame) {
	ship := s.field.ship
	maxX := s.cfg.Board.Width() - ship.W
	fired := false

	for _, a := range in.Actions {
		switch a {
		case core.ActionMoveLeft:
			ship.X = core.Clamp(ship.X-s.cfg.Player.Step, 0, maxX)
		case core.ActionMoveRight:
			ship.X = core.Clamp(ship.X+s.cfg.Player.Step, 0, maxX)
		case core.ActionFire:
			if !fired && s.canFire() {
				s.fire()
				fired = true
			}
		}
	}
}

// canFire enforces the cooldown. A cooldown of 0 or 1 allows one shot per tick.
func (s *Session) canFire() bool {
	if !s.hasShot {
		return true
	}
	gap := uint64(max(s.cfg.Player.FireCooldownTicks, 1)) //#nosec G115 -- validated non-negative
	return s.tick-s.lastShot >= gap
}

func (s *Session) fire() {
	ship := s.field.ship
	bw := s.cfg.Bullets
	s.field.playerBullets = append(s.field.playerBullets, NewBullet(
		RolePlayerBullet,
		ship.X+ship.W*15/32,
		ship.Y,
		bw.Width,
		bw.Height,
	))
	s.lastShot = s.tick
	s.hasShot = true
	s.field.emit(core.EventShot, 0)
}

// Status returns whether the game is running or over.
func (s *Session) Status() Status {
	return s.status
}

// Paused reports whether the simulation is frozen by a pause toggle.
func (s *Session) Paused() bool {
	return s.paused
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.field.score
}

// HighScore returns the best score of this session's finished games.
func (s *Session) HighScore() int {
	return s.highScore
}

// Wave returns the 1-based wave number.
func (s *Session) Wave() int {
	return s.field.wave
}
