package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestBuildWaveCountAndLayout(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	gen := NewWaveGenerator(cfg, rand.New(rand.NewSource(1)))

	tests := []struct{ columns, rows int }{
		{3, 2}, {4, 3}, {6, 10}, {1, 1},
	}

	for _, tc := range tests {
		aliens := gen.BuildWave(tc.columns, tc.rows)
		if len(aliens) != tc.columns*tc.rows {
			t.Fatalf("BuildWave(%d, %d) built %d aliens", tc.columns, tc.rows, len(aliens))
		}

		for i, a := range aliens {
			c, r := i/tc.rows, i%tc.rows
			wantX := cfg.Aliens.OffsetX + c*cfg.Aliens.Width
			wantY := cfg.Aliens.OffsetY + r*cfg.Aliens.Height
			if a.X != wantX || a.Y != wantY {
				t.Errorf("alien %d at (%d, %d), expected (%d, %d)", i, a.X, a.Y, wantX, wantY)
			}
			if !a.Alive || a.HP != 2 || a.Role != RoleAlien {
				t.Errorf("alien %d: alive=%v hp=%d role=%s", i, a.Alive, a.HP, a.Role)
			}
			if a.Skin < SkinWhite || a.Skin > SkinYellow {
				t.Errorf("alien %d has skin %d", i, a.Skin)
			}
		}
	}
}

func TestBuildWaveEmpty(t *testing.T) {
	gen := NewWaveGenerator(config.DefaultInvadersConfig(), rand.New(rand.NewSource(1)))

	if got := gen.BuildWave(0, 5); len(got) != 0 {
		t.Errorf("BuildWave(0, 5) = %d aliens, expected none", len(got))
	}
}

func TestBuildWaveSkinsFollowSeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	a := NewWaveGenerator(cfg, rand.New(rand.NewSource(42))).BuildWave(6, 10)
	b := NewWaveGenerator(cfg, rand.New(rand.NewSource(42))).BuildWave(6, 10)

	for i := range a {
		if a[i].Skin != b[i].Skin {
			t.Fatalf("alien %d skin differs between equal seeds", i)
		}
	}
}

func TestNextLevel(t *testing.T) {
	gen := NewWaveGenerator(config.DefaultInvadersConfig(), rand.New(rand.NewSource(1)))

	tests := []struct {
		columns, rows         int
		wantColumns, wantRows int
	}{
		{3, 2, 4, 3},
		{5, 8, 6, 9},
		{6, 9, 6, 10},
		{6, 10, 6, 10},
	}

	for _, tc := range tests {
		c, r := gen.NextLevel(tc.columns, tc.rows)
		if c != tc.wantColumns || r != tc.wantRows {
			t.Errorf("NextLevel(%d, %d) = (%d, %d), expected (%d, %d)",
				tc.columns, tc.rows, c, r, tc.wantColumns, tc.wantRows)
		}
	}
}

func TestLargestWaveStaysAboveShip(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	gen := NewWaveGenerator(cfg, rand.New(rand.NewSource(1)))
	aliens := gen.BuildWave(gen.MaxColumns(), gen.MaxRows())

	shipY := cfg.Board.TileSize*cfg.Board.Rows - cfg.Board.TileSize*2
	for _, a := range aliens {
		if a.Bottom() > shipY {
			t.Fatalf("alien at y=%d overlaps the ship row at %d", a.Y, shipY)
		}
		if a.Right() >= cfg.Board.Width() {
			t.Fatalf("alien at x=%d touches the right wall", a.X)
		}
	}
}
