package config

import "fmt"

// ValidationError reports a config value the simulation cannot run with.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks that the tuning describes a playable board.
func (c InvadersConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.Board.TileSize > 0, "board.tile_size", "must be positive"},
		{c.Board.Columns > 0, "board.columns", "must be positive"},
		{c.Board.Rows > 0, "board.rows", "must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player", "size must be positive"},
		{c.Player.Width <= c.Board.Width(), "player.width", "wider than the board"},
		{c.Player.Step > 0, "player.step", "must be positive"},
		{c.Player.FireCooldownTicks >= 0, "player.fire_cooldown_ticks", "must not be negative"},
		{c.Aliens.Width > 0 && c.Aliens.Height > 0, "aliens", "size must be positive"},
		{c.Aliens.HP > 0, "aliens.hp", "must be positive"},
		{c.Aliens.Speed > 0, "aliens.speed", "must be positive"},
		{c.Aliens.FirePercent >= 0 && c.Aliens.FirePercent <= 100, "aliens.fire_percent", "must be within 0..100"},
		{c.Aliens.Skins > 0 && c.Aliens.Skins <= MaxSkins, "aliens.skins", fmt.Sprintf("must be within 1..%d", MaxSkins)},
		{c.Bullets.Width > 0 && c.Bullets.Height > 0, "bullets", "size must be positive"},
		{c.Bullets.PlayerSpeed > 0, "bullets.player_speed", "must be positive"},
		{c.Bullets.AlienSpeed > 0, "bullets.alien_speed", "must be positive"},
		{c.Wave.InitialColumns > 0, "wave.initial_columns", "must be positive"},
		{c.Wave.InitialRows > 0, "wave.initial_rows", "must be positive"},
		{c.Wave.MaxColumns(c.Board) >= c.Wave.InitialColumns, "wave.column_margin", "leaves no room for the initial columns"},
		{c.Wave.MaxRows(c.Board) >= c.Wave.InitialRows, "wave.row_margin", "leaves no room for the initial rows"},
		{c.Aliens.OffsetX+c.Wave.MaxColumns(c.Board)*c.Aliens.Width <= c.Board.Width(), "wave.column_margin", "widest wave runs off the board"},
		{c.Aliens.OffsetY+c.Wave.MaxRows(c.Board)*c.Aliens.Height < c.Board.ShipY(), "wave.row_margin", "deepest wave reaches the ship"},
		{c.Scoring.AlienKill >= 0 && c.Scoring.WaveBonusPer >= 0, "scoring", "points must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return ValidationError{Field: check.field, Message: check.message}
		}
	}
	return nil
}
