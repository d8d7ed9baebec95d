package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// WaveGenerator lays out alien formations and decides how they grow.
type WaveGenerator struct {
	board  config.BoardConfig
	aliens config.AlienConfig
	wave   config.WaveConfig
	rng    *rand.Rand
}

// NewWaveGenerator creates a generator. rng picks alien skins.
func NewWaveGenerator(cfg config.InvadersConfig, rng *rand.Rand) *WaveGenerator {
	return &WaveGenerator{
		board:  cfg.Board,
		aliens: cfg.Aliens,
		wave:   cfg.Wave,
		rng:    rng,
	}
}

// BuildWave returns columns*rows live aliens. The slice is column-major:
// every row of column 0 first, then column 1, and so on.
func (w *WaveGenerator) BuildWave(columns, rows int) []*Entity {
	if columns <= 0 || rows <= 0 {
		return nil
	}

	aliens := make([]*Entity, 0, columns*rows)
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			skin := Skin(w.rng.Intn(w.aliens.Skins))
			aliens = append(aliens, NewAlien(
				w.aliens.OffsetX+c*w.aliens.Width,
				w.aliens.OffsetY+r*w.aliens.Height,
				w.aliens.Width,
				w.aliens.Height,
				w.aliens.HP,
				skin,
			))
		}
	}
	return aliens
}

// NextLevel grows the formation by one column and one row, capped so the
// formation never spawns on top of the ship.
func (w *WaveGenerator) NextLevel(columns, rows int) (int, int) {
	return min(columns+1, w.MaxColumns()), min(rows+1, w.MaxRows())
}

// MaxColumns is the widest formation the board allows.
func (w *WaveGenerator) MaxColumns() int {
	return w.wave.MaxColumns(w.board)
}

// MaxRows is the deepest formation the board allows.
func (w *WaveGenerator) MaxRows() int {
	return w.wave.MaxRows(w.board)
}

// InitialSize returns the formation size of the first wave.
func (w *WaveGenerator) InitialSize() (int, int) {
	return w.wave.InitialColumns, w.wave.InitialRows
}
