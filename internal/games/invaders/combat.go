package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// battlefield is the mutable state the tick phases work on.
type battlefield struct {
	ship          *Entity
	aliens        []*Entity
	playerBullets []*Entity
	alienBullets  []*Entity

	alienCount int
	score      int
	columns    int
	rows       int
	wave       int

	lost   bool
	events []core.Event
}

func (b *battlefield) emit(kind core.EventKind, value int) {
	b.events = append(b.events, core.Event{Kind: kind, Value: value})
}

// CombatResolver moves bullets, applies hits and handles wave turnover.
type CombatResolver struct {
	bullets config.BulletConfig
	scoring config.ScoringConfig
	height  int

	firePercent int
	rng         *rand.Rand
	waves       *WaveGenerator
}

// NewCombatResolver creates a resolver. rng drives alien fire.
func NewCombatResolver(cfg config.InvadersConfig, waves *WaveGenerator, rng *rand.Rand) *CombatResolver {
	return &CombatResolver{
		bullets:     cfg.Bullets,
		scoring:     cfg.Scoring,
		height:      cfg.Board.Height(),
		firePercent: cfg.Aliens.FirePercent,
		rng:         rng,
		waves:       waves,
	}
}

// Advance runs one combat phase: player bullets, alien bullets, cleanup,
// alien fire, then the wave-clear check.
func (c *CombatResolver) Advance(b *battlefield) {
	c.movePlayerBullets(b)
	c.moveAlienBullets(b)
	c.sweep(b)
	c.alienFire(b)
	c.checkWaveClear(b)
}

func (c *CombatResolver) movePlayerBullets(b *battlefield) {
	for _, bullet := range b.playerBullets {
		bullet.Y -= c.bullets.PlayerSpeed

		for _, alien := range b.aliens {
			if bullet.Used || !alien.Alive || !Collides(bullet, alien) {
				continue
			}
			bullet.Used = true
			if alien.Damage() {
				b.alienCount--
				b.score += c.scoring.AlienKill
				b.emit(core.EventAlienKilled, c.scoring.AlienKill)
			} else {
				b.emit(core.EventAlienHit, 0)
			}
		}
	}
}

func (c *CombatResolver) moveAlienBullets(b *battlefield) {
	for _, bullet := range b.alienBullets {
		bullet.Y += c.bullets.AlienSpeed

		if !bullet.Used && Collides(bullet, b.ship) {
			b.lost = true
		}
	}
}

// sweep drops spent bullets and those that left the board.
func (c *CombatResolver) sweep(b *battlefield) {
	b.playerBullets = keep(b.playerBullets, func(e *Entity) bool {
		return !e.Used && e.Y >= 0
	})
	b.alienBullets = keep(b.alienBullets, func(e *Entity) bool {
		return !e.Used && e.Y <= c.height
	})
}

// alienFire rolls once per tick. On success one random slot of the alien
// array fires; a dead slot means no shot this tick.
func (c *CombatResolver) alienFire(b *battlefield) {
	if c.rng.Intn(100) >= c.firePercent {
		return
	}
	if len(b.aliens) == 0 {
		return
	}

	alien := b.aliens[c.rng.Intn(len(b.aliens))]
	if !alien.Alive {
		return
	}

	b.alienBullets = append(b.alienBullets, NewBullet(
		RoleAlienBullet,
		alien.X+alien.W/2-c.bullets.Width/2,
		alien.Bottom(),
		c.bullets.Width,
		c.bullets.Height,
	))
	b.emit(core.EventAlienShot, 0)
}

// checkWaveClear pays the wave bonus and builds the next, larger wave once
// every alien is dead.
func (c *CombatResolver) checkWaveClear(b *battlefield) {
	if b.alienCount != 0 {
		return
	}

	bonus := b.columns * b.rows * c.scoring.WaveBonusPer
	b.score += bonus
	b.emit(core.EventWaveCleared, b.wave)

	b.columns, b.rows = c.waves.NextLevel(b.columns, b.rows)
	b.wave++
	b.playerBullets = nil
	b.alienBullets = nil
	b.aliens = c.waves.BuildWave(b.columns, b.rows)
	b.alienCount = len(b.aliens)
}

// keep filters s in place, preserving order.
func keep(s []*Entity, ok func(*Entity) bool) []*Entity {
	out := s[:0]
	for _, e := range s {
		if ok(e) {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(s); i++ {
		s[i] = nil
	}
	return out
}
