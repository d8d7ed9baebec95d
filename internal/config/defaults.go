package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in tuning. It mirrors
// defaults/invaders.yaml and is used if the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	const tile = 32
	return InvadersConfig{
		Board: BoardConfig{
			TileSize: tile,
			Columns:  16,
			Rows:     16,
		},
		Player: PlayerConfig{
			Width:  tile * 2,
			Height: tile,
			Step:   tile,
		},
		Aliens: AlienConfig{
			Width:       tile * 2,
			Height:      tile,
			OffsetX:     tile,
			OffsetY:     tile,
			HP:          2,
			Speed:       1,
			FirePercent: 2,
			Skins:       4,
		},
		Bullets: BulletConfig{
			Width:       tile / 8,
			Height:      tile / 2,
			PlayerSpeed: 10,
			AlienSpeed:  10,
		},
		Wave: WaveConfig{
			InitialColumns: 3,
			InitialRows:    2,
			ColumnMargin:   2,
			RowMargin:      6,
		},
		Scoring: ScoringConfig{
			AlienKill:    100,
			WaveBonusPer: 100,
		},
	}
}
