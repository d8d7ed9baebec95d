package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// AlienView is a live alien as seen by the renderer.
type AlienView struct {
	Rect core.Rect
	Skin Skin
	HP   int
}

// Snapshot is a read-only copy of everything a renderer or a test needs.
// It shares no memory with the session.
type Snapshot struct {
	Tick   uint64
	BoardW int
	BoardH int

	Ship          core.Rect
	Aliens        []AlienView // live aliens only
	PlayerBullets []core.Rect // unused only
	AlienBullets  []core.Rect // unused only

	Score      int
	HighScore  int
	Wave       int
	Columns    int
	Rows       int
	AlienCount int
	VelocityX  int

	GameOver bool
	Paused   bool
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	f := &s.field
	snap := Snapshot{
		Tick:       s.tick,
		BoardW:     s.cfg.Board.Width(),
		BoardH:     s.cfg.Board.Height(),
		Ship:       f.ship.Rect,
		Score:      f.score,
		HighScore:  s.highScore,
		Wave:       f.wave,
		Columns:    f.columns,
		Rows:       f.rows,
		AlienCount: f.alienCount,
		VelocityX:  s.formation.VelocityX,
		GameOver:   s.status == StatusGameOver,
		Paused:     s.paused,
	}

	snap.Aliens = make([]AlienView, 0, f.alienCount)
	for _, a := range f.aliens {
		if a.Alive {
			snap.Aliens = append(snap.Aliens, AlienView{Rect: a.Rect, Skin: a.Skin, HP: a.HP})
		}
	}
	snap.PlayerBullets = unusedRects(f.playerBullets)
	snap.AlienBullets = unusedRects(f.alienBullets)
	return snap
}

func unusedRects(bullets []*Entity) []core.Rect {
	out := make([]core.Rect, 0, len(bullets))
	for _, b := range bullets {
		if !b.Used {
			out = append(out, b.Rect)
		}
	}
	return out
}

// Hash folds the snapshot into a number for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(vals ...int) {
		for _, v := range vals {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	mixRect := func(r core.Rect) {
		mix(r.X, r.Y, r.W, r.H)
	}

	mix(snap.BoardW, snap.BoardH, snap.Score, snap.HighScore, snap.Wave,
		snap.Columns, snap.Rows, snap.AlienCount, snap.VelocityX)
	mixRect(snap.Ship)

	mix(len(snap.Aliens))
	for _, a := range snap.Aliens {
		mixRect(a.Rect)
		mix(int(a.Skin), a.HP)
	}
	mix(len(snap.PlayerBullets))
	for _, r := range snap.PlayerBullets {
		mixRect(r)
	}
	mix(len(snap.AlienBullets))
	for _, r := range snap.AlienBullets {
		mixRect(r)
	}

	if snap.GameOver {
		mix(1)
	}
	if snap.Paused {
		mix(2)
	}
	return h
}
