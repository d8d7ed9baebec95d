// Package config loads the YAML tuning for the invaders simulation and applies
// difficulty presets on top of it.
package config

// InvadersConfig holds every tunable of the simulation. All sizes and speeds
// are in board pixels and pixels per tick.
type InvadersConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Player  PlayerConfig  `yaml:"player"`
	Aliens  AlienConfig   `yaml:"aliens"`
	Bullets BulletConfig  `yaml:"bullets"`
	Wave    WaveConfig    `yaml:"wave"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield as a grid of square tiles.
type BoardConfig struct {
	TileSize int `yaml:"tile_size"`
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
}

// Width returns the board width in pixels.
func (b BoardConfig) Width() int {
	return b.TileSize * b.Columns
}

// Height returns the board height in pixels.
func (b BoardConfig) Height() int {
	return b.TileSize * b.Rows
}

// ShipY returns the top edge of the ship, two tiles above the bottom.
func (b BoardConfig) ShipY() int {
	return b.Height() - 2*b.TileSize
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	Step              int `yaml:"step"`                // horizontal move per intent
	FireCooldownTicks int `yaml:"fire_cooldown_ticks"` // 0 = one shot per tick at most
}

// AlienConfig defines a single alien and the formation it flies in.
type AlienConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	OffsetX     int `yaml:"offset_x"`
	OffsetY     int `yaml:"offset_y"`
	HP          int `yaml:"hp"`
	Speed       int `yaml:"speed"`        // initial formation velocity, moving right
	FirePercent int `yaml:"fire_percent"` // chance per tick that one alien slot fires
	Skins       int `yaml:"skins"`
}

// BulletConfig defines projectile sizes and speeds.
type BulletConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PlayerSpeed int `yaml:"player_speed"` // upward, applied as a negative delta
	AlienSpeed  int `yaml:"alien_speed"`
}

// WaveConfig defines the initial formation and how it grows.
type WaveConfig struct {
	InitialColumns int `yaml:"initial_columns"`
	InitialRows    int `yaml:"initial_rows"`
	ColumnMargin   int `yaml:"column_margin"` // max columns = board columns/2 - margin
	RowMargin      int `yaml:"row_margin"`    // max rows = board rows - margin
}

// MaxSkins is the number of alien skins the renderer can draw.
const MaxSkins = 4

// MaxColumns returns the widest formation allowed on the board.
func (w WaveConfig) MaxColumns(b BoardConfig) int {
	return b.Columns/2 - w.ColumnMargin
}

// MaxRows returns the deepest formation allowed on the board.
func (w WaveConfig) MaxRows(b BoardConfig) int {
	return b.Rows - w.RowMargin
}

// ScoringConfig defines points.
type ScoringConfig struct {
	AlienKill    int `yaml:"alien_kill"`
	WaveBonusPer int `yaml:"wave_bonus_per_alien"` // bonus = columns * rows * this
}
