// Package invaders implements the space invaders simulation: a ship at the
// bottom of the board shooting at a formation of aliens that sweeps sideways,
// drops a row at each wall and fires back.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Role tells which kind of object an Entity is.
type Role int

const (
	RoleShip Role = iota
	RoleAlien
	RolePlayerBullet
	RoleAlienBullet
)

func (r Role) String() string {
	switch r {
	case RoleShip:
		return "ship"
	case RoleAlien:
		return "alien"
	case RolePlayerBullet:
		return "player_bullet"
	case RoleAlienBullet:
		return "alien_bullet"
	default:
		return "unknown"
	}
}

// Skin is the cosmetic variant of an alien.
type Skin int

const (
	SkinWhite Skin = iota
	SkinCyan
	SkinMagenta
	SkinYellow
)

func (s Skin) String() string {
	switch s {
	case SkinWhite:
		return "white"
	case SkinCyan:
		return "cyan"
	case SkinMagenta:
		return "magenta"
	case SkinYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Entity is any rectangle on the board. Alive, HP and Skin only mean
// something for aliens; Used only for bullets.
type Entity struct {
	core.Rect
	Role Role

	Alive bool
	HP    int
	Skin  Skin

	Used bool
}

// NewShip places the player's ship.
func NewShip(x, y, w, h int) *Entity {
	return &Entity{Rect: core.NewRect(x, y, w, h), Role: RoleShip, Alive: true}
}

// NewAlien creates a live alien with full hit points.
func NewAlien(x, y, w, h, hp int, skin Skin) *Entity {
	return &Entity{
		Rect:  core.NewRect(x, y, w, h),
		Role:  RoleAlien,
		Alive: true,
		HP:    hp,
		Skin:  skin,
	}
}

// NewBullet creates an unused bullet. role must be RolePlayerBullet or RoleAlienBullet.
func NewBullet(role Role, x, y, w, h int) *Entity {
	return &Entity{Rect: core.NewRect(x, y, w, h), Role: role}
}

// Damage takes one hit point from an alien and reports whether it died.
// Dead aliens and non-aliens are left untouched.
func (e *Entity) Damage() bool {
	if e.Role != RoleAlien || !e.Alive {
		return false
	}
	e.HP--
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
		return true
	}
	return false
}
