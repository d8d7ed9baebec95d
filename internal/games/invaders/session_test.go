package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestNewSessionStartingState(t *testing.T) {
	s := newTestSession(quietConfig(), 1)
	snap := s.Snapshot()

	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %s, expected playing", s.Status())
	}
	if snap.Ship.X != 224 || snap.Ship.Y != 448 || snap.Ship.W != 64 || snap.Ship.H != 32 {
		t.Errorf("ship = %+v, expected (224, 448, 64, 32)", snap.Ship)
	}
	if snap.BoardW != 512 || snap.BoardH != 512 {
		t.Errorf("board = %dx%d, expected 512x512", snap.BoardW, snap.BoardH)
	}
	if snap.Columns != 3 || snap.Rows != 2 || snap.AlienCount != 6 || len(snap.Aliens) != 6 {
		t.Errorf("wave %dx%d with %d/%d aliens, expected 3x2 with 6",
			snap.Columns, snap.Rows, snap.AlienCount, len(snap.Aliens))
	}
	if snap.Aliens[0].Rect.X != 32 || snap.Aliens[0].Rect.Y != 32 {
		t.Errorf("first alien at (%d, %d), expected (32, 32)", snap.Aliens[0].Rect.X, snap.Aliens[0].Rect.Y)
	}
	if snap.Aliens[1].Rect.X != 32 || snap.Aliens[1].Rect.Y != 64 {
		t.Errorf("second alien at (%d, %d), expected (32, 64)", snap.Aliens[1].Rect.X, snap.Aliens[1].Rect.Y)
	}
	if snap.VelocityX != 1 || snap.Score != 0 || snap.Wave != 1 {
		t.Errorf("velocity=%d score=%d wave=%d", snap.VelocityX, snap.Score, snap.Wave)
	}
}

func TestShipMovementIsClamped(t *testing.T) {
	s := newTestSession(quietConfig(), 1)

	s.Step(frame(core.ActionMoveLeft, core.ActionMoveLeft))
	if got := s.Snapshot().Ship.X; got != 160 {
		t.Errorf("after two left steps x = %d, expected 160", got)
	}

	left := make([]core.Action, 20)
	for i := range left {
		left[i] = core.ActionMoveLeft
	}
	s.Step(frame(left...))
	if got := s.Snapshot().Ship.X; got != 0 {
		t.Errorf("x = %d, expected clamp at 0", got)
	}

	right := make([]core.Action, 30)
	for i := range right {
		right[i] = core.ActionMoveRight
	}
	s.Step(frame(right...))
	if got := s.Snapshot().Ship.X; got != 448 {
		t.Errorf("x = %d, expected clamp at 448", got)
	}
}

func TestFireSpawnsOneBulletPerTick(t *testing.T) {
	s := newTestSession(quietConfig(), 1)

	events := s.Step(frame(core.ActionFire, core.ActionFire, core.ActionFire))
	snap := s.Snapshot()

	if len(snap.PlayerBullets) != 1 {
		t.Fatalf("got %d bullets, expected 1", len(snap.PlayerBullets))
	}
	b := snap.PlayerBullets[0]
	if b.X != 254 || b.Y != 438 || b.W != 4 || b.H != 16 {
		t.Errorf("bullet = %+v, expected (254, 438, 4, 16)", b)
	}
	if !hasEvent(events, core.EventShot) {
		t.Error("expected a shot event")
	}

	s.Step(frame(core.ActionFire))
	if got := len(s.Snapshot().PlayerBullets); got != 2 {
		t.Errorf("got %d bullets after a second tick, expected 2", got)
	}
}

func TestFireCooldown(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.FireCooldownTicks = 3
	s := newTestSession(cfg, 1)

	for i := 0; i < 4; i++ {
		s.Step(frame(core.ActionFire))
	}

	if got := len(s.Snapshot().PlayerBullets); got != 2 {
		t.Errorf("got %d bullets over 4 ticks with cooldown 3, expected 2", got)
	}
}

func TestBulletEventuallyHitsNearestAlien(t *testing.T) {
	s := newTestSession(quietConfig(), 1)

	s.Step(frame(core.ActionFire))
	if len(s.field.playerBullets) != 1 {
		t.Fatal("fire did not spawn a bullet")
	}
	bullet := s.field.playerBullets[0]

	for i := 0; i < 100 && !bullet.Used; i++ {
		s.Step(frame())
	}
	if !bullet.Used {
		t.Fatal("bullet never hit anything")
	}

	damaged := 0
	for _, a := range s.field.aliens {
		if a.HP == 1 {
			damaged++
			if bullet.X < a.X || bullet.Right() > a.Right() {
				t.Errorf("damaged alien at x=%d..%d is not in the bullet column %d", a.X, a.Right(), bullet.X)
			}
		} else if a.HP != 2 {
			t.Errorf("alien hp = %d, expected 2", a.HP)
		}
	}
	if damaged != 1 {
		t.Errorf("%d aliens damaged, expected exactly 1", damaged)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0 after a single hit", s.Score())
	}
}

func TestForcedWaveClear(t *testing.T) {
	tests := []struct {
		name                  string
		columns, rows         int
		wantColumns, wantRows int
	}{
		{"first wave", 3, 2, 4, 3},
		{"at cap", 6, 10, 6, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(quietConfig(), 1)
			s.field.columns, s.field.rows = tc.columns, tc.rows
			s.field.alienCount = 0

			events := s.Step(frame())
			snap := s.Snapshot()

			if snap.Score != tc.columns*tc.rows*100 {
				t.Errorf("score = %d, expected %d", snap.Score, tc.columns*tc.rows*100)
			}
			if snap.Columns != tc.wantColumns || snap.Rows != tc.wantRows {
				t.Errorf("wave %dx%d, expected %dx%d", snap.Columns, snap.Rows, tc.wantColumns, tc.wantRows)
			}
			if snap.AlienCount != tc.wantColumns*tc.wantRows || len(snap.Aliens) != snap.AlienCount {
				t.Errorf("alienCount = %d with %d live aliens", snap.AlienCount, len(snap.Aliens))
			}
			if snap.Wave != 2 {
				t.Errorf("wave = %d, expected 2", snap.Wave)
			}
			if !hasEvent(events, core.EventWaveCleared) {
				t.Error("expected a wave cleared event")
			}
		})
	}
}

// loseNow puts an alien bullet right above the ship.
func loseNow(s *Session) {
	ship := s.field.ship
	s.field.alienBullets = append(s.field.alienBullets,
		NewBullet(RoleAlienBullet, ship.X+10, ship.Y-12, 4, 16))
}

func TestGameOverFreezesAndRecordsHighScore(t *testing.T) {
	s := newTestSession(quietConfig(), 1)
	s.field.score = 500
	loseNow(s)

	events := s.Step(frame())
	if s.Status() != StatusGameOver {
		t.Fatalf("Status() = %s, expected game over", s.Status())
	}
	if !hasEvent(events, core.EventGameOver) {
		t.Error("expected a game over event")
	}
	if s.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", s.HighScore())
	}

	before := s.Snapshot()
	s.Step(frame(core.ActionMoveLeft, core.ActionFire, core.ActionPause))
	after := s.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("simulation advanced while game over")
	}
}

func TestAlienReachingShipEndsGame(t *testing.T) {
	s := newTestSession(quietConfig(), 1)
	for _, a := range s.field.aliens {
		a.Y = 448
	}

	s.Step(frame())
	if s.Status() != StatusGameOver {
		t.Errorf("Status() = %s, expected game over", s.Status())
	}
}

func TestResetFromGameOver(t *testing.T) {
	fresh := newTestSession(quietConfig(), 1).Snapshot()

	setups := map[string]func(*Session){
		"straight away": func(s *Session) {},
		"late in the game": func(s *Session) {
			s.Step(frame(core.ActionMoveRight, core.ActionMoveRight, core.ActionFire))
			s.field.columns, s.field.rows = 5, 7
			s.field.wave = 4
			s.field.score = 12300
			s.formation.VelocityX = -1
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			s := newTestSession(quietConfig(), 99)
			setup(s)
			loseNow(s)
			s.Step(frame())
			if s.Status() != StatusGameOver {
				t.Fatal("setup did not end the game")
			}
			high := s.HighScore()

			events := s.Step(frame(core.ActionConfirm))
			if !hasEvent(events, core.EventReset) {
				t.Error("expected a reset event")
			}

			got := s.Snapshot()
			if got.GameOver || got.Score != 0 || got.Wave != 1 || got.Tick != 0 {
				t.Errorf("after reset: gameOver=%v score=%d wave=%d tick=%d", got.GameOver, got.Score, got.Wave, got.Tick)
			}
			if got.Ship != fresh.Ship {
				t.Errorf("ship = %+v, expected %+v", got.Ship, fresh.Ship)
			}
			if got.Columns != fresh.Columns || got.Rows != fresh.Rows || got.AlienCount != fresh.AlienCount {
				t.Errorf("wave %dx%d (%d), expected %dx%d (%d)",
					got.Columns, got.Rows, got.AlienCount, fresh.Columns, fresh.Rows, fresh.AlienCount)
			}
			if got.VelocityX != fresh.VelocityX {
				t.Errorf("VelocityX = %d, expected %d", got.VelocityX, fresh.VelocityX)
			}
			if len(got.PlayerBullets) != 0 || len(got.AlienBullets) != 0 {
				t.Error("bullets survived the reset")
			}
			for i := range got.Aliens {
				if got.Aliens[i].Rect != fresh.Aliens[i].Rect || got.Aliens[i].HP != fresh.Aliens[i].HP {
					t.Errorf("alien %d = %+v, expected %+v", i, got.Aliens[i], fresh.Aliens[i])
				}
			}
			if s.HighScore() != high {
				t.Errorf("high score changed on reset: %d -> %d", high, s.HighScore())
			}
		})
	}
}

func TestRestartActionAlsoResets(t *testing.T) {
	s := newTestSession(quietConfig(), 1)
	loseNow(s)
	s.Step(frame())

	s.Step(frame(core.ActionMoveLeft))
	if s.Status() != StatusGameOver {
		t.Fatal("movement should not reset the game")
	}

	s.Step(frame(core.ActionRestart))
	if s.Status() != StatusPlaying {
		t.Error("restart should start a new game")
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession(quietConfig(), 1)
	s.Step(frame())

	s.Step(frame(core.ActionPause))
	if !s.Paused() {
		t.Fatal("expected paused")
	}
	before := s.Snapshot()

	s.Step(frame(core.ActionMoveLeft, core.ActionFire))
	if got := s.Snapshot(); got.Ship != before.Ship || got.Tick != before.Tick || len(got.PlayerBullets) != 0 {
		t.Error("paused session should not move")
	}

	s.Step(frame(core.ActionPause))
	if s.Paused() {
		t.Error("second pause should resume")
	}

	s.Step(frame(core.ActionPause, core.ActionPause))
	if s.Paused() {
		t.Error("two toggles in one tick should cancel out")
	}
}

// randomInputs builds a reproducible input script.
func randomInputs(seed int64, n int) []core.InputFrame {
	rng := rand.New(rand.NewSource(seed))
	actions := []core.Action{
		core.ActionNone, core.ActionMoveLeft, core.ActionMoveRight,
		core.ActionFire, core.ActionFire, core.ActionConfirm,
	}
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = frame(actions[rng.Intn(len(actions))])
	}
	return frames
}

func TestSessionInvariantsUnderRandomPlay(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.FirePercent = 10
	s := newTestSession(cfg, 2024)

	prevScore := 0
	for i, in := range randomInputs(7, 5000) {
		events := s.Step(in)

		if s.Status() == StatusPlaying && !hasEvent(events, core.EventReset) && s.Score() < prevScore {
			t.Fatalf("tick %d: score fell from %d to %d", i, prevScore, s.Score())
		}
		prevScore = s.Score()

		live := 0
		for _, a := range s.field.aliens {
			if a.HP < 0 {
				t.Fatalf("tick %d: negative hp", i)
			}
			if a.HP == 0 && a.Alive {
				t.Fatalf("tick %d: alien with 0 hp is alive", i)
			}
			if a.Alive {
				live++
			}
		}
		if live != s.field.alienCount {
			t.Fatalf("tick %d: alienCount %d, live aliens %d", i, s.field.alienCount, live)
		}

		ship := s.field.ship
		if ship.X < 0 || ship.Right() > cfg.Board.Width() {
			t.Fatalf("tick %d: ship out of bounds at x=%d", i, ship.X)
		}
		for _, b := range s.field.playerBullets {
			if b.Used {
				t.Fatalf("tick %d: used player bullet survived the sweep", i)
			}
		}
		for _, b := range s.field.alienBullets {
			if b.Used {
				t.Fatalf("tick %d: used alien bullet survived the sweep", i)
			}
		}
		if s.HighScore() < 0 || (s.Status() == StatusGameOver && s.HighScore() < s.Score()) {
			t.Fatalf("tick %d: high score %d below final score %d", i, s.HighScore(), s.Score())
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	inputs := randomInputs(3, 1500)

	run := func() Snapshot {
		s := newTestSession(cfg, 12345)
		for _, in := range inputs {
			s.Step(in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("equal seeds and inputs diverged: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("score/tick differ: %d/%d vs %d/%d", a.Score, a.Tick, b.Score, b.Tick)
	}
}
